package domain

import "time"

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// Report is a lost/broken-item record filed by a user or by an admin after
// a return inspection. Filing a report does not touch stock or the rental
// itself; status moves pending -> resolved one way only.
type Report struct {
	ID            string       `json:"id" firestore:"-"`
	UserID        string       `json:"userId" firestore:"userId"`
	ItemID        string       `json:"itemId" firestore:"itemId"`
	ItemName      string       `json:"itemName" firestore:"itemName"`
	Quantity      int64        `json:"quantity" firestore:"quantity"`
	DateRented    time.Time    `json:"dateRented" firestore:"dateRented"`
	ReportDetails string       `json:"reportDetails" firestore:"reportDetails"`
	Location      string       `json:"location" firestore:"location"`
	ReportedAt    time.Time    `json:"reportedAt" firestore:"reportedAt"`
	Status        ReportStatus `json:"status" firestore:"status"`
}
