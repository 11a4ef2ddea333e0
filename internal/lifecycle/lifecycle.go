// Package lifecycle implements the rental state transitions: reserving
// stock into a cart, converting a cart into rentals at checkout, due-date
// arithmetic, overdue detection, returns, and lost/broken reports.
//
// Every function is pure: callers pass in current Item/User snapshots and
// receive the mutations to persist. Durability and atomicity belong to the
// caller; the Firestore repositories run ConfirmRental and ReturnItem
// inside a transaction so concurrent checkouts cannot overdraw stock.
package lifecycle

import (
	"fmt"
	"time"

	"gearshed-backend/internal/domain"
)

// RentalPeriod is the default loan length and the floor below which a due
// date may never be shortened.
const RentalPeriod = 7 * 24 * time.Hour

// StockUpdate holds the new stock counts to persist for one item.
type StockUpdate struct {
	ItemID  string
	Rented  int64
	InStock int64
}

// ConfirmResult is the full set of mutations produced by a successful
// checkout confirmation.
type ConfirmResult struct {
	Updates []StockUpdate
	Rentals []domain.Rental
}

// Reserve validates a storefront reservation against an item snapshot and
// builds the cart line. It has no effect on persistent stock: cancelling a
// reservation before confirmation leaves the item untouched.
func Reserve(item *domain.Item, quantity int64) (domain.CartLine, error) {
	if quantity < 1 {
		return domain.CartLine{}, fmt.Errorf("quantity must be at least 1, got %d: %w", quantity, domain.ErrValidation)
	}
	if quantity > item.InStock {
		return domain.CartLine{}, &domain.InsufficientStockError{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Requested: quantity,
			Available: item.InStock,
		}
	}
	return domain.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Quantity: quantity,
		Location: item.Location,
	}, nil
}

// ConfirmRental re-validates every cart line against the latest item
// snapshots and produces the stock updates and rental records to persist.
// Validation is all-or-nothing: if any line exceeds availability the whole
// confirmation fails and no updates may be applied. Lines for the same item
// draw from a shared availability budget.
//
// For each line: rented += quantity, inStock -= quantity, so total owned
// units per item are unchanged. Each new rental starts at now with a due
// date one rental period later.
func ConfirmRental(cart []domain.CartLine, items map[string]*domain.Item, now time.Time) (*ConfirmResult, error) {
	if len(cart) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", domain.ErrValidation)
	}

	available := make(map[string]int64, len(items))
	for id, item := range items {
		available[id] = item.InStock
	}

	taken := make(map[string]int64, len(cart))
	rentals := make([]domain.Rental, 0, len(cart))
	for _, line := range cart {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("item %s: %w", line.ItemID, domain.ErrNotFound)
		}
		if line.Quantity > available[line.ItemID] {
			return nil, &domain.InsufficientStockError{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Requested: line.Quantity,
				Available: available[line.ItemID],
			}
		}
		available[line.ItemID] -= line.Quantity
		taken[line.ItemID] += line.Quantity
		rentals = append(rentals, domain.Rental{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: line.Quantity,
			Date:     now,
			DueDate:  ComputeDueDate(now),
		})
	}

	updates := make([]StockUpdate, 0, len(taken))
	for _, line := range cart {
		qty, pending := taken[line.ItemID]
		if !pending {
			continue // already emitted for an earlier line of the same item
		}
		delete(taken, line.ItemID)
		item := items[line.ItemID]
		updates = append(updates, StockUpdate{
			ItemID:  item.ID,
			Rented:  item.Rented + qty,
			InStock: item.InStock - qty,
		})
	}

	return &ConfirmResult{Updates: updates, Rentals: rentals}, nil
}

// ComputeDueDate returns the default due date for a rental started at date.
func ComputeDueDate(date time.Time) time.Time {
	return date.Add(RentalPeriod)
}

// IsOverdue reports whether an open rental is past its due date. Return
// entries are never overdue.
func IsOverdue(now, dueDate time.Time, entryType domain.ReceiptType) bool {
	if entryType != domain.ReceiptTypeRental {
		return false
	}
	return now.After(dueDate)
}

// ExtendDueDate pushes a due date out by one rental period. Always allowed.
func ExtendDueDate(dueDate time.Time) time.Time {
	return dueDate.Add(RentalPeriod)
}

// ShortenDueDate pulls a due date in by one rental period. The result may
// never be earlier than one rental period after the rental start.
func ShortenDueDate(dueDate, rentalDate time.Time) (time.Time, error) {
	shortened := dueDate.Add(-RentalPeriod)
	if shortened.Before(rentalDate.Add(RentalPeriod)) {
		return time.Time{}, domain.ErrBelowFloor
	}
	return shortened, nil
}

// FindRental locates the rental identified by itemID and the original
// rental instant within a user's rental list.
func FindRental(rentals []domain.Rental, itemID string, date time.Time) (domain.Rental, error) {
	for _, r := range rentals {
		if r.Matches(itemID, date) {
			return r, nil
		}
	}
	return domain.Rental{}, fmt.Errorf("rental of item %s at %s: %w", itemID, date.Format(time.RFC3339), domain.ErrNotFound)
}

// RemoveRental returns the rental list without the rental identified by
// itemID and date, along with the removed record.
func RemoveRental(rentals []domain.Rental, itemID string, date time.Time) ([]domain.Rental, domain.Rental, error) {
	for i, r := range rentals {
		if r.Matches(itemID, date) {
			remaining := make([]domain.Rental, 0, len(rentals)-1)
			remaining = append(remaining, rentals[:i]...)
			remaining = append(remaining, rentals[i+1:]...)
			return remaining, r, nil
		}
	}
	return nil, domain.Rental{}, fmt.Errorf("rental of item %s at %s: %w", itemID, date.Format(time.RFC3339), domain.ErrNotFound)
}

// ReturnItem computes the stock counts after a rental comes back. The
// rented count is clamped at zero so a corrupted snapshot from a previous
// partial failure can never drive it negative; the returned quantity is
// still added back to inStock in full.
func ReturnItem(item *domain.Item, rental domain.Rental) StockUpdate {
	rented := item.Rented - rental.Quantity
	if rented < 0 {
		rented = 0
	}
	return StockUpdate{
		ItemID:  item.ID,
		Rented:  rented,
		InStock: item.InStock + rental.Quantity,
	}
}

// ReturnReceipt builds the audit-log entry for a completed return.
func ReturnReceipt(userID string, rental domain.Rental, location string, now time.Time) domain.Receipt {
	return domain.Receipt{
		UserID:   userID,
		ItemID:   rental.ItemID,
		ItemName: rental.Name,
		Quantity: rental.Quantity,
		Date:     now,
		Type:     domain.ReceiptTypeReturn,
		Location: location,
	}
}

// RentalReceipt builds the audit-log entry for a confirmed rental line.
func RentalReceipt(userID string, rental domain.Rental, location string) domain.Receipt {
	return domain.Receipt{
		UserID:   userID,
		ItemID:   rental.ItemID,
		ItemName: rental.Name,
		Quantity: rental.Quantity,
		Date:     rental.Date,
		Type:     domain.ReceiptTypeRental,
		Location: location,
	}
}

// SubmitReport constructs a pending lost/broken report for a rental. It
// does not mutate item or rental state; a report never auto-triggers a
// return.
func SubmitReport(userID string, rental domain.Rental, details, location string, now time.Time) domain.Report {
	return domain.Report{
		UserID:        userID,
		ItemID:        rental.ItemID,
		ItemName:      rental.Name,
		Quantity:      rental.Quantity,
		DateRented:    rental.Date,
		ReportDetails: details,
		Location:      location,
		ReportedAt:    now,
		Status:        domain.ReportStatusPending,
	}
}

// ResolveReport moves a report to its terminal resolved state. Resolving an
// already-resolved report is a no-op, so repeated admin actions are safe.
func ResolveReport(report domain.Report) domain.Report {
	report.Status = domain.ReportStatusResolved
	return report
}
