package repository

import (
	"context"
	"time"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
)

// ItemFilter narrows a catalog listing. Query matches item names by
// case-insensitive substring; empty fields match everything.
type ItemFilter struct {
	Category    string
	Subcategory string
	Location    string
	Query       string
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Category, error)
}

type UserRepository interface {
	// Ensure returns the user document, creating an empty one on first
	// authenticated request.
	Ensure(ctx context.Context, id, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateCart(ctx context.Context, userID string, cart []domain.CartLine) error
	// SetRentalDueDate rewrites the due date of the rental identified by
	// (itemID, date) inside the user's rental list.
	SetRentalDueDate(ctx context.Context, userID, itemID string, date, dueDate time.Time) error
}

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	ListByUser(ctx context.Context, userID string) ([]domain.Receipt, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Report, error)
}

// ConfirmOutcome is what a committed checkout produced: the rentals
// appended to the user document and the stock counts written per item.
type ConfirmOutcome struct {
	Rentals []domain.Rental
	Updates []lifecycle.StockUpdate
}

// ReturnOutcome is what a committed return produced.
type ReturnOutcome struct {
	Rental  domain.Rental
	Receipt domain.Receipt
	Update  lifecycle.StockUpdate
}

// RentalRepository owns the two stock-mutating operations. Implementations
// must execute each one atomically, re-reading item snapshots and
// re-validating availability inside the same transaction that writes the
// new counts, so concurrent checkouts against one item cannot both pass a
// stale availability check.
type RentalRepository interface {
	// Confirm converts the user's cart into rentals: re-validates every
	// line, adjusts item stock, appends rentals, clears the cart, and logs
	// one rental receipt per line. All-or-nothing.
	Confirm(ctx context.Context, userID string, now time.Time) (*ConfirmOutcome, error)
	// Return closes the rental identified by (itemID, date): restores item
	// stock, removes the rental, and logs a return receipt.
	Return(ctx context.Context, userID, itemID string, date, now time.Time) (*ReturnOutcome, error)
}
