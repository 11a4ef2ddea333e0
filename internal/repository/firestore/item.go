package firestore

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type itemRepository struct {
	client *firestore.Client
}

func NewItemRepository(client *firestore.Client) repository.ItemRepository {
	return &itemRepository{client: client}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	ref := r.client.Collection(itemsCollection).NewDoc()
	item.ID = ref.ID
	logger.StoreCall("create", itemsCollection, "id", item.ID)
	_, err := ref.Create(ctx, item)
	logger.StoreResult("create", itemsCollection, err, "id", item.ID)
	return mapErr(err)
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	snap, err := r.client.Collection(itemsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, mapErr(err))
	}
	item := &domain.Item{}
	if err := snap.DataTo(item); err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}
	item.ID = snap.Ref.ID
	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	logger.StoreCall("update", itemsCollection, "id", item.ID)
	_, err := r.client.Collection(itemsCollection).Doc(item.ID).Set(ctx, item)
	logger.StoreResult("update", itemsCollection, err, "id", item.ID)
	if isNotFound(err) {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	logger.StoreCall("delete", itemsCollection, "id", id)
	_, err := r.client.Collection(itemsCollection).Doc(id).Delete(ctx, firestore.Exists)
	logger.StoreResult("delete", itemsCollection, err, "id", id)
	if isNotFound(err) {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return err
}

// List applies the equality filters in the query and the name substring
// match in memory; the store has no substring operator and the catalog is
// small enough to scan.
func (r *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	q := r.client.Collection(itemsCollection).Query
	if filter.Category != "" {
		q = q.Where("category", "==", filter.Category)
	}
	if filter.Subcategory != "" {
		q = q.Where("subcategory", "==", filter.Subcategory)
	}
	if filter.Location != "" {
		q = q.Where("location", "==", filter.Location)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	needle := strings.ToLower(filter.Query)
	items := []domain.Item{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var item domain.Item
		if err := snap.DataTo(&item); err != nil {
			return nil, err
		}
		item.ID = snap.Ref.ID
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
