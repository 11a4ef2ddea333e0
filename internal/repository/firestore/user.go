package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/repository"
)

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// Ensure creates the user document on first sight of a new identity. The
// create uses a create-precondition so two concurrent first requests cannot
// clobber each other.
func (r *userRepository) Ensure(ctx context.Context, id, email string) (*domain.User, error) {
	ref := r.client.Collection(usersCollection).Doc(id)
	fresh := &domain.User{
		Email:   email,
		Rentals: []domain.Rental{},
		Cart:    []domain.CartLine{},
	}
	_, err := ref.Create(ctx, fresh)
	if err == nil {
		logger.Info("Created user document", "user_id", id)
		fresh.ID = id
		return fresh, nil
	}
	if status.Code(err) != codes.AlreadyExists {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, mapErr(err))
	}
	user := &domain.User{}
	if err := snap.DataTo(user); err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	user.ID = snap.Ref.ID
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	users := []domain.User{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			return nil, err
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}
	return users, nil
}

func (r *userRepository) UpdateCart(ctx context.Context, userID string, cart []domain.CartLine) error {
	if cart == nil {
		cart = []domain.CartLine{}
	}
	logger.StoreCall("update-cart", usersCollection, "user_id", userID, "lines", len(cart))
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "cart", Value: cart},
	})
	logger.StoreResult("update-cart", usersCollection, err, "user_id", userID)
	if isNotFound(err) {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return err
}

// SetRentalDueDate rewrites the rentals array with the new due date on the
// matching rental. The read and write share a transaction so a concurrent
// return cannot resurrect a removed rental. The floor validation happens in
// the service; the rental start date it depends on is immutable, so
// validating outside the transaction is safe.
func (r *userRepository) SetRentalDueDate(ctx context.Context, userID, itemID string, date, dueDate time.Time) error {
	ref := r.client.Collection(usersCollection).Doc(userID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return fmt.Errorf("user %s: %w", userID, mapErr(err))
		}
		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			return fmt.Errorf("user %s: %w", userID, err)
		}
		for i := range user.Rentals {
			if user.Rentals[i].Matches(itemID, date) {
				user.Rentals[i].DueDate = dueDate
				return tx.Update(ref, []firestore.Update{
					{Path: "rentals", Value: user.Rentals},
				})
			}
		}
		return fmt.Errorf("rental of item %s: %w", itemID, domain.ErrNotFound)
	})
	logger.StoreResult("set-rental-due-date", usersCollection, err, "user_id", userID, "item_id", itemID)
	return err
}
