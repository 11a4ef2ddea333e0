package service

import (
	"context"
	"sort"
	"time"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/repository"
)

type userService struct {
	userRepo    repository.UserRepository
	receiptRepo repository.ReceiptRepository
	reportRepo  repository.ReportRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	receiptRepo repository.ReceiptRepository,
	reportRepo repository.ReportRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		receiptRepo: receiptRepo,
		reportRepo:  reportRepo,
	}
}

func (s *userService) Ensure(ctx context.Context, uid, email string) (*domain.User, error) {
	return s.userRepo.Ensure(ctx, uid, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// History merges the user's receipts and reports into one feed sorted
// newest first. Rental receipts whose rental is still open carry the
// current due date and an overdue flag.
func (s *userService) History(ctx context.Context, userID string, now time.Time) ([]HistoryEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receiptRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(receipts)+len(reports))
	for _, receipt := range receipts {
		entry := HistoryEntry{
			Type:     string(receipt.Type),
			Date:     receipt.Date,
			ItemID:   receipt.ItemID,
			ItemName: receipt.ItemName,
			Quantity: receipt.Quantity,
			Location: receipt.Location,
		}
		if receipt.Type == domain.ReceiptTypeRental {
			if rental, err := lifecycle.FindRental(user.Rentals, receipt.ItemID, receipt.Date); err == nil {
				due := rental.DueDate
				entry.DueDate = &due
				entry.Overdue = lifecycle.IsOverdue(now, rental.DueDate, domain.ReceiptTypeRental)
			}
		}
		entries = append(entries, entry)
	}
	for _, report := range reports {
		entries = append(entries, HistoryEntry{
			Type:     "report",
			Date:     report.ReportedAt,
			ItemID:   report.ItemID,
			ItemName: report.ItemName,
			Quantity: report.Quantity,
			Location: report.Location,
			Details:  report.ReportDetails,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}
