package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type reportRepository struct {
	client *firestore.Client
}

func NewReportRepository(client *firestore.Client) repository.ReportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	ref := r.client.Collection(reportsCollection).Doc(report.ID)
	logger.StoreCall("create", reportsCollection, "id", report.ID)
	_, err := ref.Create(ctx, report)
	logger.StoreResult("create", reportsCollection, err, "id", report.ID)
	return mapErr(err)
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	snap, err := r.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", id, mapErr(err))
	}
	report := &domain.Report{}
	if err := snap.DataTo(report); err != nil {
		return nil, fmt.Errorf("report %s: %w", id, err)
	}
	report.ID = snap.Ref.ID
	return report, nil
}

func (r *reportRepository) Update(ctx context.Context, report *domain.Report) error {
	logger.StoreCall("update", reportsCollection, "id", report.ID, "status", report.Status)
	_, err := r.client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	logger.StoreResult("update", reportsCollection, err, "id", report.ID)
	if isNotFound(err) {
		return fmt.Errorf("report %s: %w", report.ID, domain.ErrNotFound)
	}
	return err
}

func (r *reportRepository) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	q := r.client.Collection(reportsCollection).Query
	if status != "" {
		q = q.Where("status", "==", string(status))
	}
	return r.collect(q.Documents(ctx))
}

func (r *reportRepository) ListByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	q := r.client.Collection(reportsCollection).Where("userId", "==", userID)
	return r.collect(q.Documents(ctx))
}

func (r *reportRepository) collect(iter *firestore.DocumentIterator) ([]domain.Report, error) {
	defer iter.Stop()

	reports := []domain.Report{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var report domain.Report
		if err := snap.DataTo(&report); err != nil {
			return nil, err
		}
		report.ID = snap.Ref.ID
		reports = append(reports, report)
	}
	return reports, nil
}
