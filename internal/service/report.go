package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/metrics"
	"gearshed-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewReportService(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

// Submit files a pending report against the open rental identified by
// (itemID, date). The rental keeps running and stock is untouched; closing
// it out is still a separate return.
func (s *reportService) Submit(ctx context.Context, userID, itemID string, date time.Time, details, location string) (*domain.Report, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	rental, err := lifecycle.FindRental(user.Rentals, itemID, date)
	if err != nil {
		return nil, err
	}

	report := lifecycle.SubmitReport(userID, rental, details, location, time.Now().UTC())
	report.ID = uuid.NewString()
	if err := s.reportRepo.Create(ctx, &report); err != nil {
		return nil, err
	}

	metrics.ReportsFiled.Inc()
	logger.InfoContext(ctx, "Report filed", "report_id", report.ID, "user_id", userID, "item_id", itemID)
	return &report, nil
}

// Resolve moves a report to its terminal state and notifies the reporter.
// Resolving an already-resolved report changes nothing and is not an error.
func (s *reportService) Resolve(ctx context.Context, id string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportStatusResolved {
		return report, nil
	}

	resolved := lifecycle.ResolveReport(*report)
	if err := s.reportRepo.Update(ctx, &resolved); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Report resolved", "report_id", id)

	if s.emailSvc != nil {
		user, err := s.userRepo.GetByID(ctx, report.UserID)
		if err != nil {
			logger.Warn("Could not load reporter for notification", "report_id", id, "error", err)
		} else if err := s.emailSvc.SendReportResolved(ctx, user.Email, &resolved); err != nil {
			// Notification failure never rolls back a resolution.
			logger.Warn("Failed to send report-resolved email", "report_id", id, "error", err)
		}
	}
	return &resolved, nil
}

func (s *reportService) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	return s.reportRepo.List(ctx, status)
}

func (s *reportService) ListByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	return s.reportRepo.ListByUser(ctx, userID)
}
