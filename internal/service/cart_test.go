package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gearshed-backend/internal/domain"
)

func TestCartService_Reserve(t *testing.T) {
	ctx := context.Background()

	drill := &domain.Item{
		ID:       "item-drill",
		Name:     "Cordless Drill",
		Location: "North Shed",
		Rented:   2,
		InStock:  3,
	}

	t.Run("New line", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		itemRepo.On("GetByID", ctx, "item-drill").Return(drill, nil)
		userRepo.On("UpdateCart", ctx, "u1", mock.AnythingOfType("[]domain.CartLine")).Return(nil)

		line, err := svc.Reserve(ctx, "u1", "item-drill", 2)
		assert.NoError(t, err)
		assert.Equal(t, "item-drill", line.ItemID)
		assert.Equal(t, int64(2), line.Quantity)
		assert.Equal(t, "Cordless Drill", line.Name)
		userRepo.AssertCalled(t, "UpdateCart", ctx, "u1", mock.MatchedBy(func(cart []domain.CartLine) bool {
			return len(cart) == 1 && cart[0].Quantity == 2
		}))
	})

	t.Run("Merges existing line", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		user := &domain.User{
			ID:   "u1",
			Cart: []domain.CartLine{{ItemID: "item-drill", Name: "Cordless Drill", Quantity: 1}},
		}
		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		itemRepo.On("GetByID", ctx, "item-drill").Return(drill, nil)
		userRepo.On("UpdateCart", ctx, "u1", mock.AnythingOfType("[]domain.CartLine")).Return(nil)

		line, err := svc.Reserve(ctx, "u1", "item-drill", 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), line.Quantity)
		userRepo.AssertCalled(t, "UpdateCart", ctx, "u1", mock.MatchedBy(func(cart []domain.CartLine) bool {
			return len(cart) == 1 && cart[0].Quantity == 3
		}))
	})

	t.Run("Merged quantity exceeding stock is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		user := &domain.User{
			ID:   "u1",
			Cart: []domain.CartLine{{ItemID: "item-drill", Quantity: 2}},
		}
		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		itemRepo.On("GetByID", ctx, "item-drill").Return(drill, nil)

		_, err := svc.Reserve(ctx, "u1", "item-drill", 2)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		userRepo.AssertNotCalled(t, "UpdateCart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero quantity is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		itemRepo.On("GetByID", ctx, "item-drill").Return(drill, nil)

		_, err := svc.Reserve(ctx, "u1", "item-drill", 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCartService_RemoveLine(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes matching line", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		user := &domain.User{
			ID: "u1",
			Cart: []domain.CartLine{
				{ItemID: "item-a", Quantity: 1},
				{ItemID: "item-b", Quantity: 2},
			},
		}
		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		userRepo.On("UpdateCart", ctx, "u1", mock.AnythingOfType("[]domain.CartLine")).Return(nil)

		err := svc.RemoveLine(ctx, "u1", "item-a")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "UpdateCart", ctx, "u1", mock.MatchedBy(func(cart []domain.CartLine) bool {
			return len(cart) == 1 && cart[0].ItemID == "item-b"
		}))
	})

	t.Run("Missing line", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		svc := NewCartService(userRepo, itemRepo)

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)

		err := svc.RemoveLine(ctx, "u1", "item-z")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	itemRepo := new(MockItemRepo)
	svc := NewCartService(userRepo, itemRepo)

	userRepo.On("UpdateCart", ctx, "u1", []domain.CartLine(nil)).Return(nil)

	err := svc.Clear(ctx, "u1")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
