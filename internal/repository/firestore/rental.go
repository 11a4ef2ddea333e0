package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type rentalRepository struct {
	client *firestore.Client
}

func NewRentalRepository(client *firestore.Client) repository.RentalRepository {
	return &rentalRepository{client: client}
}

// Confirm runs the whole checkout inside one transaction: the cart and
// every referenced item are re-read, availability is re-validated, and the
// stock counts, rental list, cleared cart, and rental receipts commit
// together or not at all. The store aborts and retries the transaction if
// another writer touches an item in between, which closes the
// read-then-write race between concurrent checkouts.
func (r *rentalRepository) Confirm(ctx context.Context, userID string, now time.Time) (*repository.ConfirmOutcome, error) {
	userRef := r.client.Collection(usersCollection).Doc(userID)

	var outcome *repository.ConfirmOutcome
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		outcome = nil

		userSnap, err := tx.Get(userRef)
		if err != nil {
			return fmt.Errorf("user %s: %w", userID, mapErr(err))
		}
		var user domain.User
		if err := userSnap.DataTo(&user); err != nil {
			return fmt.Errorf("user %s: %w", userID, err)
		}

		// All reads must precede writes inside a transaction.
		items := make(map[string]*domain.Item, len(user.Cart))
		for _, line := range user.Cart {
			if _, ok := items[line.ItemID]; ok {
				continue
			}
			snap, err := tx.Get(r.client.Collection(itemsCollection).Doc(line.ItemID))
			if err != nil {
				if isNotFound(err) {
					return fmt.Errorf("item %s: %w", line.ItemID, domain.ErrNotFound)
				}
				return err
			}
			item := &domain.Item{}
			if err := snap.DataTo(item); err != nil {
				return fmt.Errorf("item %s: %w", line.ItemID, err)
			}
			item.ID = snap.Ref.ID
			items[item.ID] = item
		}

		result, err := lifecycle.ConfirmRental(user.Cart, items, now)
		if err != nil {
			return err
		}

		for _, u := range result.Updates {
			err := tx.Update(r.client.Collection(itemsCollection).Doc(u.ItemID), []firestore.Update{
				{Path: "rented", Value: u.Rented},
				{Path: "inStock", Value: u.InStock},
			})
			if err != nil {
				return err
			}
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "rentals", Value: append(user.Rentals, result.Rentals...)},
			{Path: "cart", Value: []domain.CartLine{}},
		}); err != nil {
			return err
		}

		for _, rental := range result.Rentals {
			receipt := lifecycle.RentalReceipt(userID, rental, items[rental.ItemID].Location)
			receipt.ID = uuid.NewString()
			if err := tx.Create(r.client.Collection(receiptsCollection).Doc(receipt.ID), &receipt); err != nil {
				return err
			}
		}

		outcome = &repository.ConfirmOutcome{Rentals: result.Rentals, Updates: result.Updates}
		return nil
	})
	logger.StoreResult("confirm-rental", usersCollection, err, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Return closes one rental atomically: restore stock, drop the rental from
// the user document, and append the return receipt.
func (r *rentalRepository) Return(ctx context.Context, userID, itemID string, date, now time.Time) (*repository.ReturnOutcome, error) {
	userRef := r.client.Collection(usersCollection).Doc(userID)
	itemRef := r.client.Collection(itemsCollection).Doc(itemID)

	var outcome *repository.ReturnOutcome
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		outcome = nil

		userSnap, err := tx.Get(userRef)
		if err != nil {
			return fmt.Errorf("user %s: %w", userID, mapErr(err))
		}
		var user domain.User
		if err := userSnap.DataTo(&user); err != nil {
			return fmt.Errorf("user %s: %w", userID, err)
		}

		itemSnap, err := tx.Get(itemRef)
		if err != nil {
			return fmt.Errorf("item %s: %w", itemID, mapErr(err))
		}
		item := &domain.Item{}
		if err := itemSnap.DataTo(item); err != nil {
			return fmt.Errorf("item %s: %w", itemID, err)
		}
		item.ID = itemSnap.Ref.ID

		remaining, rental, err := lifecycle.RemoveRental(user.Rentals, itemID, date)
		if err != nil {
			return err
		}
		update := lifecycle.ReturnItem(item, rental)

		if err := tx.Update(itemRef, []firestore.Update{
			{Path: "rented", Value: update.Rented},
			{Path: "inStock", Value: update.InStock},
		}); err != nil {
			return err
		}
		if err := tx.Update(userRef, []firestore.Update{
			{Path: "rentals", Value: remaining},
		}); err != nil {
			return err
		}

		receipt := lifecycle.ReturnReceipt(userID, rental, item.Location, now)
		receipt.ID = uuid.NewString()
		if err := tx.Create(r.client.Collection(receiptsCollection).Doc(receipt.ID), &receipt); err != nil {
			return err
		}

		outcome = &repository.ReturnOutcome{Rental: rental, Receipt: receipt, Update: update}
		return nil
	})
	logger.StoreResult("return-rental", usersCollection, err, "user_id", userID, "item_id", itemID)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
