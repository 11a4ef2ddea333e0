package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
)

func TestReportService_Submit(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	user := &domain.User{
		ID: "u1",
		Rentals: []domain.Rental{
			{ItemID: "item-a", Name: "Kayak", Quantity: 1, Date: date, DueDate: date.Add(lifecycle.RentalPeriod)},
		},
	}

	t.Run("Success", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewReportService(reportRepo, userRepo, emailSvc)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		reportRepo.On("Create", ctx, mock.AnythingOfType("*domain.Report")).Return(nil)

		report, err := svc.Submit(ctx, "u1", "item-a", date, "cracked hull", "North Shed")
		assert.NoError(t, err)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, domain.ReportStatusPending, report.Status)
		assert.Equal(t, "Kayak", report.ItemName)
		assert.Equal(t, date, report.DateRented)
		assert.Equal(t, "cracked hull", report.ReportDetails)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewReportService(reportRepo, userRepo, emailSvc)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)

		_, err := svc.Submit(ctx, "u1", "item-z", date, "details", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReportService_Resolve(t *testing.T) {
	ctx := context.Background()

	pending := &domain.Report{
		ID:     "rep-1",
		UserID: "u1",
		Status: domain.ReportStatusPending,
	}

	t.Run("Resolves and notifies reporter", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewReportService(reportRepo, userRepo, emailSvc)

		reportRepo.On("GetByID", ctx, "rep-1").Return(pending, nil)
		reportRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil)
		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "u1@example.com"}, nil)
		emailSvc.On("SendReportResolved", ctx, "u1@example.com", mock.AnythingOfType("*domain.Report")).Return(nil)

		resolved, err := svc.Resolve(ctx, "rep-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusResolved, resolved.Status)
		emailSvc.AssertNumberOfCalls(t, "SendReportResolved", 1)
	})

	t.Run("Already resolved is a no-op", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewReportService(reportRepo, userRepo, emailSvc)

		done := &domain.Report{ID: "rep-2", UserID: "u1", Status: domain.ReportStatusResolved}
		reportRepo.On("GetByID", ctx, "rep-2").Return(done, nil)

		resolved, err := svc.Resolve(ctx, "rep-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusResolved, resolved.Status)
		reportRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendReportResolved", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Email failure does not roll back", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewReportService(reportRepo, userRepo, emailSvc)

		reportRepo.On("GetByID", ctx, "rep-1").Return(pending, nil)
		reportRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil)
		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "u1@example.com"}, nil)
		emailSvc.On("SendReportResolved", ctx, "u1@example.com", mock.AnythingOfType("*domain.Report")).
			Return(errors.New("sendgrid unavailable"))

		resolved, err := svc.Resolve(ctx, "rep-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusResolved, resolved.Status)
	})
}
