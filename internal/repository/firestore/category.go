package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type categoryRepository struct {
	client *firestore.Client
}

func NewCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ref := r.client.Collection(categoriesCollection).NewDoc()
	category.ID = ref.ID
	logger.StoreCall("create", categoriesCollection, "id", category.ID)
	_, err := ref.Create(ctx, category)
	logger.StoreResult("create", categoriesCollection, err, "id", category.ID)
	return mapErr(err)
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	snap, err := r.client.Collection(categoriesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", id, mapErr(err))
	}
	category := &domain.Category{}
	if err := snap.DataTo(category); err != nil {
		return nil, fmt.Errorf("category %s: %w", id, err)
	}
	category.ID = snap.Ref.ID
	return category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	logger.StoreCall("update", categoriesCollection, "id", category.ID)
	_, err := r.client.Collection(categoriesCollection).Doc(category.ID).Set(ctx, category)
	logger.StoreResult("update", categoriesCollection, err, "id", category.ID)
	if isNotFound(err) {
		return fmt.Errorf("category %s: %w", category.ID, domain.ErrNotFound)
	}
	return err
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	logger.StoreCall("delete", categoriesCollection, "id", id)
	_, err := r.client.Collection(categoriesCollection).Doc(id).Delete(ctx, firestore.Exists)
	logger.StoreResult("delete", categoriesCollection, err, "id", id)
	if isNotFound(err) {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return err
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	iter := r.client.Collection(categoriesCollection).Documents(ctx)
	defer iter.Stop()

	categories := []domain.Category{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var category domain.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, err
		}
		category.ID = snap.Ref.ID
		categories = append(categories, category)
	}
	return categories, nil
}
