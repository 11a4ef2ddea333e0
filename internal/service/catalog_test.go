package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gearshed-backend/internal/domain"
)

func TestCatalogService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success publishes event", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		live := new(MockBroadcaster)
		svc := NewCatalogService(itemRepo, live)

		item := &domain.Item{Name: "Chainsaw", Category: "Tools", InStock: 4}
		itemRepo.On("Create", ctx, item).Return(nil)
		live.On("Publish", mock.AnythingOfType("service.Event")).Return()

		err := svc.CreateItem(ctx, item)
		assert.NoError(t, err)
		live.AssertCalled(t, "Publish", mock.MatchedBy(func(event Event) bool {
			return event.Type == "item.created"
		}))
	})

	t.Run("Blank name is rejected", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := NewCatalogService(itemRepo, nil)

		err := svc.CreateItem(ctx, &domain.Item{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
		itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Negative stock is rejected", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := NewCatalogService(itemRepo, nil)

		err := svc.CreateItem(ctx, &domain.Item{Name: "Chainsaw", InStock: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCategoryService_Subcategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes entries", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		svc := NewCategoryService(categoryRepo)

		categoryRepo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

		category, err := svc.CreateCategory(ctx, "Camping", []string{" Tents ", "Stoves", ""})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Tents", "Stoves"}, category.Subcategories)
	})

	t.Run("Duplicate subcategory is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		svc := NewCategoryService(categoryRepo)

		_, err := svc.CreateCategory(ctx, "Camping", []string{"Tents", " Tents"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Blank category name is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		svc := NewCategoryService(categoryRepo)

		_, err := svc.CreateCategory(ctx, "", nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
