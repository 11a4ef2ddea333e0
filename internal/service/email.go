package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed notification sender. With an
// empty API key every send is logged and skipped, which keeps development
// and tests offline.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendOverdueReminder(ctx context.Context, email string, rentals []domain.Rental) error {
	var lines []string
	for _, r := range rentals {
		lines = append(lines, fmt.Sprintf("  - %s (x%d), due %s", r.Name, r.Quantity, r.DueDate.Format("Jan 2, 2006")))
	}
	subject := "Overdue equipment reminder"
	body := fmt.Sprintf(
		"Hello,\n\nThe following rented equipment is past its due date:\n\n%s\n\nPlease return it at your earliest convenience.\n\nThe GearShed Team",
		strings.Join(lines, "\n"),
	)
	return s.send(ctx, email, subject, body)
}

func (s *sendGridEmailService) SendReportResolved(ctx context.Context, email string, report *domain.Report) error {
	subject := fmt.Sprintf("Your report for %s has been resolved", report.ItemName)
	body := fmt.Sprintf(
		"Hello,\n\nYour report for %s (rented %s) has been reviewed and resolved.\n\nThe GearShed Team",
		report.ItemName, report.DateRented.Format("Jan 2, 2006"),
	)
	return s.send(ctx, email, subject, body)
}

func (s *sendGridEmailService) send(ctx context.Context, to, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Info("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
