package service

import (
	"context"
	"fmt"
	"strings"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/repository"
)

type catalogService struct {
	itemRepo repository.ItemRepository
	live     Broadcaster
}

func NewCatalogService(itemRepo repository.ItemRepository, live Broadcaster) CatalogService {
	return &catalogService{itemRepo: itemRepo, live: live}
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return err
	}
	s.publish(Event{Type: "item.created", ItemID: item.ID, Item: item})
	return nil
}

func (s *catalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// UpdateItem covers both detail edits and admin stock edits. A stock edit
// rewrites both counts at once, so rented+inStock still describes the total
// owned units as of this edit.
func (s *catalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}
	s.publish(Event{Type: "item.updated", ItemID: item.ID, Item: item})
	return nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(Event{Type: "item.deleted", ItemID: id})
	return nil
}

func (s *catalogService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, filter)
}

func (s *catalogService) publish(event Event) {
	if s.live != nil {
		s.live.Publish(event)
	}
}

func validateItem(item *domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("item name is required: %w", domain.ErrValidation)
	}
	if item.Rented < 0 || item.InStock < 0 {
		return fmt.Errorf("stock counts cannot be negative: %w", domain.ErrValidation)
	}
	return nil
}
