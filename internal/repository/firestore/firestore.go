// Package firestore implements the repository interfaces on the Firestore
// document database. Collection layout:
//
//	items/{itemId}        catalog entries with stock counts
//	categories/{catId}    category -> subcategory mappings
//	users/{uid}           one doc per identity, embeds rentals and cart
//	receipts/{receiptId}  append-only rental/return audit log
//	reports/{reportId}    lost/broken reports
package firestore

import (
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/repository"
)

const (
	itemsCollection      = "items"
	categoriesCollection = "categories"
	usersCollection      = "users"
	receiptsCollection   = "receipts"
	reportsCollection    = "reports"
)

type Store struct {
	client *firestore.Client
	repository.ItemRepository
	repository.CategoryRepository
	repository.UserRepository
	repository.ReceiptRepository
	repository.ReportRepository
	repository.RentalRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client:             client,
		ItemRepository:     NewItemRepository(client),
		CategoryRepository: NewCategoryRepository(client),
		UserRepository:     NewUserRepository(client),
		ReceiptRepository:  NewReceiptRepository(client),
		ReportRepository:   NewReportRepository(client),
		RentalRepository:   NewRentalRepository(client),
	}
}

// mapErr converts the driver's NotFound status into the domain sentinel so
// callers never see grpc status codes.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}

// isNotFound reports whether err is the driver's NotFound, the domain
// sentinel, or a wrap of either.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || status.Code(err) == codes.NotFound
}
