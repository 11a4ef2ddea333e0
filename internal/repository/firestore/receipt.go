package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type receiptRepository struct {
	client *firestore.Client
}

func NewReceiptRepository(client *firestore.Client) repository.ReceiptRepository {
	return &receiptRepository{client: client}
}

// Create appends to the receipt log. Receipts are never updated or deleted.
func (r *receiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	ref := r.client.Collection(receiptsCollection).Doc(receipt.ID)
	logger.StoreCall("create", receiptsCollection, "id", receipt.ID, "type", receipt.Type)
	_, err := ref.Create(ctx, receipt)
	logger.StoreResult("create", receiptsCollection, err, "id", receipt.ID)
	return mapErr(err)
}

func (r *receiptRepository) ListByUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	iter := r.client.Collection(receiptsCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	receipts := []domain.Receipt{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var receipt domain.Receipt
		if err := snap.DataTo(&receipt); err != nil {
			return nil, err
		}
		receipt.ID = snap.Ref.ID
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
