package models

import "time"

// DateFormat is the calendar-date layout used on requests and loans.
const DateFormat = "2006-01-02"

const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestDeclined = "DECLINED"

	LoanActive   = "ACTIVE"
	LoanReturned = "RETURNED"
)

// Request is a borrower's ask for an item over a date range. APPROVED and
// DECLINED are terminal; approved requests stay around as the audit record
// for the loan they spawned.
type Request struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"itemId"`
	BorrowerID string    `json:"borrowerId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Loan is the borrowing record created by approving a request. It moves
// ACTIVE -> RETURNED exactly once.
type Loan struct {
	ID           string   `json:"id"`
	ItemID       string   `json:"itemId"`
	BorrowerID   string   `json:"borrowerId"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Status       string   `json:"status"`
	ReturnPhotos []string `json:"returnPhotos"`
	ReturnNotes  string   `json:"returnNotes,omitempty"`
}
