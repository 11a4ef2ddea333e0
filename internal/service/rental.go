package service

import (
	"context"
	"errors"
	"time"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/metrics"
	"gearshed-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	userRepo   repository.UserRepository
	live       Broadcaster
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	userRepo repository.UserRepository,
	live Broadcaster,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		userRepo:   userRepo,
		live:       live,
	}
}

// Checkout hands the whole confirmation to the transactional repository
// operation; on success it announces the new stock counts to live viewers.
func (s *rentalService) Checkout(ctx context.Context, userID string) ([]domain.Rental, error) {
	outcome, err := s.rentalRepo.Confirm(ctx, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
		}
		return nil, err
	}

	metrics.RentalsConfirmed.Add(float64(len(outcome.Rentals)))
	logger.InfoContext(ctx, "Checkout confirmed", "user_id", userID, "rentals", len(outcome.Rentals))
	s.publishStock(outcome.Updates)
	return outcome.Rentals, nil
}

func (s *rentalService) Return(ctx context.Context, userID, itemID string, date time.Time) (*domain.Receipt, error) {
	outcome, err := s.rentalRepo.Return(ctx, userID, itemID, date, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.ItemsReturned.Inc()
	logger.InfoContext(ctx, "Rental returned", "user_id", userID, "item_id", itemID, "quantity", outcome.Rental.Quantity)
	s.publishStock([]lifecycle.StockUpdate{outcome.Update})
	return &outcome.Receipt, nil
}

func (s *rentalService) ListRentals(ctx context.Context, userID string) ([]domain.Rental, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Rentals, nil
}

func (s *rentalService) ExtendDueDate(ctx context.Context, userID, itemID string, date time.Time) (time.Time, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	rental, err := lifecycle.FindRental(user.Rentals, itemID, date)
	if err != nil {
		return time.Time{}, err
	}

	dueDate := lifecycle.ExtendDueDate(rental.DueDate)
	if err := s.userRepo.SetRentalDueDate(ctx, userID, itemID, date, dueDate); err != nil {
		return time.Time{}, err
	}
	logger.InfoContext(ctx, "Due date extended", "user_id", userID, "item_id", itemID, "due_date", dueDate)
	return dueDate, nil
}

func (s *rentalService) ShortenDueDate(ctx context.Context, userID, itemID string, date time.Time) (time.Time, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	rental, err := lifecycle.FindRental(user.Rentals, itemID, date)
	if err != nil {
		return time.Time{}, err
	}

	dueDate, err := lifecycle.ShortenDueDate(rental.DueDate, rental.Date)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.userRepo.SetRentalDueDate(ctx, userID, itemID, date, dueDate); err != nil {
		return time.Time{}, err
	}
	logger.InfoContext(ctx, "Due date shortened", "user_id", userID, "item_id", itemID, "due_date", dueDate)
	return dueDate, nil
}

// ListOverdue scans every user document for open rentals past due. The
// user population is small; the storefront has no cross-user rental index.
func (s *rentalService) ListOverdue(ctx context.Context, now time.Time) ([]OverdueRental, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overdue := []OverdueRental{}
	for _, user := range users {
		for _, rental := range user.Rentals {
			if lifecycle.IsOverdue(now, rental.DueDate, domain.ReceiptTypeRental) {
				overdue = append(overdue, OverdueRental{
					UserID: user.ID,
					Email:  user.Email,
					Rental: rental,
				})
			}
		}
	}
	return overdue, nil
}

func (s *rentalService) publishStock(updates []lifecycle.StockUpdate) {
	if s.live == nil {
		return
	}
	for i := range updates {
		s.live.Publish(Event{Type: "stock.changed", ItemID: updates[i].ItemID, Stock: &updates[i]})
	}
}
