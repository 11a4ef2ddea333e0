package service

import (
	"context"
	"time"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/repository"
)

// Event is a catalog change pushed to live storefront subscribers.
type Event struct {
	Type   string                 `json:"type"`
	ItemID string                 `json:"itemId,omitempty"`
	Item   *domain.Item           `json:"item,omitempty"`
	Stock  *lifecycle.StockUpdate `json:"stock,omitempty"`
}

// Broadcaster fans an event out to every live subscriber. Implemented by
// the websocket hub; a nil-safe no-op is used in tests.
type Broadcaster interface {
	Publish(event Event)
}

type CatalogService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, name string, subcategories []string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID string) ([]domain.CartLine, error)
	// Reserve adds or grows a cart line after validating the combined
	// quantity against current availability. No effect on item stock.
	Reserve(ctx context.Context, userID, itemID string, quantity int64) (domain.CartLine, error)
	RemoveLine(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// OverdueRental pairs an overdue rental with the user holding it.
type OverdueRental struct {
	UserID string        `json:"userId"`
	Email  string        `json:"email"`
	Rental domain.Rental `json:"rental"`
}

type RentalService interface {
	// Checkout converts the caller's cart into rentals, all-or-nothing.
	Checkout(ctx context.Context, userID string) ([]domain.Rental, error)
	// Return closes the rental identified by (itemID, date).
	Return(ctx context.Context, userID, itemID string, date time.Time) (*domain.Receipt, error)
	ListRentals(ctx context.Context, userID string) ([]domain.Rental, error)
	ExtendDueDate(ctx context.Context, userID, itemID string, date time.Time) (time.Time, error)
	ShortenDueDate(ctx context.Context, userID, itemID string, date time.Time) (time.Time, error)
	ListOverdue(ctx context.Context, now time.Time) ([]OverdueRental, error)
}

type ReportService interface {
	// Submit files a lost/broken report against an open rental. Stock and
	// the rental itself are untouched.
	Submit(ctx context.Context, userID, itemID string, date time.Time, details, location string) (*domain.Report, error)
	Resolve(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Report, error)
}

// HistoryEntry is one row of a user's merged activity feed: receipts and
// reports sorted newest first, with due-date info attached to receipts of
// still-open rentals.
type HistoryEntry struct {
	Type     string     `json:"type"` // "rental", "return", or "report"
	Date     time.Time  `json:"date"`
	ItemID   string     `json:"itemId"`
	ItemName string     `json:"itemName"`
	Quantity int64      `json:"quantity"`
	Location string     `json:"location,omitempty"`
	Details  string     `json:"details,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Overdue  bool       `json:"overdue"`
}

type UserService interface {
	Ensure(ctx context.Context, uid, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	History(ctx context.Context, userID string, now time.Time) ([]HistoryEntry, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email string, rentals []domain.Rental) error
	SendReportResolved(ctx context.Context, email string, report *domain.Report) error
}
