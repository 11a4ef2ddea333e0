package jobs

import (
	"context"
	"time"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/metrics"
	"gearshed-backend/internal/service"
)

// ScanOverdueRentals counts rentals past their due date and refreshes the
// overdue gauge. Overdue status is computed, never stored, so this job only
// observes.
func (jr *JobRunner) ScanOverdueRentals() {
	jr.runWithRecovery("ScanOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.services.Rental.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to scan overdue rentals", "error", err)
			return
		}

		metrics.OverdueRentals.Set(float64(len(overdue)))
		logger.Info("Scanned overdue rentals", "count", len(overdue))

		for _, od := range overdue {
			logger.Debug("Rental overdue",
				"user_id", od.UserID,
				"item_id", od.Rental.ItemID,
				"item_name", od.Rental.Name,
				"due_date", od.Rental.DueDate.Format("2006-01-02"))
		}
	})
}

// SendOverdueReminders emails each user holding overdue rentals, one message
// per user covering everything they still have out.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.services.Rental.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals for reminders", "error", err)
			return
		}

		byUser := make(map[string][]service.OverdueRental)
		for _, od := range overdue {
			byUser[od.UserID] = append(byUser[od.UserID], od)
		}

		sent := 0
		for userID, rentals := range byUser {
			email := rentals[0].Email
			if email == "" {
				logger.Warn("Skipping overdue reminder, user has no email", "user_id", userID)
				continue
			}

			if err := jr.services.Email.SendOverdueReminder(ctx, email, rentalsOf(rentals)); err != nil {
				logger.Error("Failed to send overdue reminder",
					"user_id", userID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "users_overdue", len(byUser), "sent", sent)
	})
}

func rentalsOf(overdue []service.OverdueRental) []domain.Rental {
	rentals := make([]domain.Rental, 0, len(overdue))
	for _, od := range overdue {
		rentals = append(rentals, od.Rental)
	}
	return rentals
}
