package domain

import "time"

type ReceiptType string

const (
	ReceiptTypeRental ReceiptType = "rental"
	ReceiptTypeReturn ReceiptType = "return"
)

// Receipt is an immutable audit-log entry recorded once per rental or
// return action.
type Receipt struct {
	ID       string      `json:"id" firestore:"-"`
	UserID   string      `json:"userId" firestore:"userId"`
	ItemID   string      `json:"itemId" firestore:"itemId"`
	ItemName string      `json:"itemName" firestore:"itemName"`
	Quantity int64       `json:"quantity" firestore:"quantity"`
	Date     time.Time   `json:"date" firestore:"date"`
	Type     ReceiptType `json:"type" firestore:"type"`
	Location string      `json:"location" firestore:"location"`
}
