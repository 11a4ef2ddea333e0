package domain

import "time"

// User holds one document per identity-provider subject. The rentals list
// only grows by append (checkout) or shrinks by removal (return); due-date
// edits are the only in-place mutation.
type User struct {
	ID      string     `json:"id" firestore:"-"`
	Email   string     `json:"email" firestore:"email"`
	Rentals []Rental   `json:"rentals" firestore:"rentals"`
	Cart    []CartLine `json:"cart" firestore:"cart"`
}

// Rental is an open borrow record embedded in a user's profile. It exists
// from checkout confirmation until return. A user may rent the same item
// more than once, so a rental is identified by (ItemID, Date).
type Rental struct {
	ItemID   string    `json:"itemId" firestore:"itemId"`
	Name     string    `json:"name" firestore:"name"`
	Quantity int64     `json:"quantity" firestore:"quantity"`
	Date     time.Time `json:"date" firestore:"date"`
	DueDate  time.Time `json:"dueDate" firestore:"dueDate"`
}

// Matches reports whether the rental is the one identified by itemID and
// the original rental instant.
func (r *Rental) Matches(itemID string, date time.Time) bool {
	return r.ItemID == itemID && r.Date.Equal(date)
}

// CartLine is a pending reservation in a user's cart. It has no effect on
// persistent stock until checkout confirmation.
type CartLine struct {
	ItemID   string `json:"itemId" firestore:"itemId"`
	Name     string `json:"name" firestore:"name"`
	Quantity int64  `json:"quantity" firestore:"quantity"`
	Location string `json:"location" firestore:"location"`
}
