package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/repository"
)

func TestRentalService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success publishes stock updates", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		userRepo := new(MockUserRepo)
		live := new(MockBroadcaster)
		svc := NewRentalService(rentalRepo, userRepo, live)

		outcome := &repository.ConfirmOutcome{
			Rentals: []domain.Rental{{ItemID: "item-a", Name: "Tent", Quantity: 1}},
			Updates: []lifecycle.StockUpdate{{ItemID: "item-a", Rented: 3, InStock: 1}},
		}
		rentalRepo.On("Confirm", ctx, "u1", mock.AnythingOfType("time.Time")).Return(outcome, nil)
		live.On("Publish", mock.AnythingOfType("service.Event")).Return()

		rentals, err := svc.Checkout(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
		live.AssertCalled(t, "Publish", mock.MatchedBy(func(event Event) bool {
			return event.Type == "stock.changed" && event.ItemID == "item-a" &&
				event.Stock != nil && event.Stock.InStock == 1
		}))
	})

	t.Run("Insufficient stock surfaces unchanged", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		userRepo := new(MockUserRepo)
		live := new(MockBroadcaster)
		svc := NewRentalService(rentalRepo, userRepo, live)

		stockErr := &domain.InsufficientStockError{ItemID: "item-a", Requested: 5, Available: 2}
		rentalRepo.On("Confirm", ctx, "u1", mock.AnythingOfType("time.Time")).Return(nil, stockErr)

		rentals, err := svc.Checkout(ctx, "u1")
		assert.Nil(t, rentals)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		live.AssertNotCalled(t, "Publish", mock.Anything)
	})
}

func TestRentalService_Return(t *testing.T) {
	ctx := context.Background()
	rentalRepo := new(MockRentalRepo)
	userRepo := new(MockUserRepo)
	live := new(MockBroadcaster)
	svc := NewRentalService(rentalRepo, userRepo, live)

	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	outcome := &repository.ReturnOutcome{
		Rental:  domain.Rental{ItemID: "item-a", Quantity: 2, Date: date},
		Receipt: domain.Receipt{ID: "r1", ItemID: "item-a", Type: domain.ReceiptTypeReturn},
		Update:  lifecycle.StockUpdate{ItemID: "item-a", Rented: 0, InStock: 4},
	}
	rentalRepo.On("Return", ctx, "u1", "item-a", date, mock.AnythingOfType("time.Time")).Return(outcome, nil)
	live.On("Publish", mock.AnythingOfType("service.Event")).Return()

	receipt, err := svc.Return(ctx, "u1", "item-a", date)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReceiptTypeReturn, receipt.Type)
	live.AssertNumberOfCalls(t, "Publish", 1)
}

func TestRentalService_DueDates(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := date.Add(lifecycle.RentalPeriod)

	user := &domain.User{
		ID: "u1",
		Rentals: []domain.Rental{
			{ItemID: "item-a", Quantity: 1, Date: date, DueDate: dueDate},
		},
	}

	t.Run("Extend adds one period", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		userRepo := new(MockUserRepo)
		svc := NewRentalService(rentalRepo, userRepo, nil)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		userRepo.On("SetRentalDueDate", ctx, "u1", "item-a", date, dueDate.Add(lifecycle.RentalPeriod)).Return(nil)

		got, err := svc.ExtendDueDate(ctx, "u1", "item-a", date)
		assert.NoError(t, err)
		assert.Equal(t, dueDate.Add(lifecycle.RentalPeriod), got)
		userRepo.AssertExpectations(t)
	})

	t.Run("Shorten below floor is rejected", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		userRepo := new(MockUserRepo)
		svc := NewRentalService(rentalRepo, userRepo, nil)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)

		_, err := svc.ShortenDueDate(ctx, "u1", "item-a", date)
		assert.ErrorIs(t, err, domain.ErrBelowFloor)
		userRepo.AssertNotCalled(t, "SetRentalDueDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		userRepo := new(MockUserRepo)
		svc := NewRentalService(rentalRepo, userRepo, nil)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)

		_, err := svc.ExtendDueDate(ctx, "u1", "item-z", date)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalService_ListOverdue(t *testing.T) {
	ctx := context.Background()
	rentalRepo := new(MockRentalRepo)
	userRepo := new(MockUserRepo)
	svc := NewRentalService(rentalRepo, userRepo, nil)

	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	users := []domain.User{
		{
			ID:    "u1",
			Email: "u1@example.com",
			Rentals: []domain.Rental{
				{ItemID: "item-a", DueDate: now.Add(-time.Hour)},
				{ItemID: "item-b", DueDate: now.Add(time.Hour)},
			},
		},
		{
			ID:    "u2",
			Email: "u2@example.com",
			Rentals: []domain.Rental{
				{ItemID: "item-c", DueDate: now.Add(-48 * time.Hour)},
			},
		},
	}
	userRepo.On("List", ctx).Return(users, nil)

	overdue, err := svc.ListOverdue(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, overdue, 2)
	assert.Equal(t, "u1", overdue[0].UserID)
	assert.Equal(t, "item-a", overdue[0].Rental.ItemID)
	assert.Equal(t, "u2", overdue[1].UserID)
}
