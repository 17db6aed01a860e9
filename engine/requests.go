package engine

import (
	"fmt"
	"time"

	"Gin_postgres_redis_toolshare/models"

	"github.com/google/uuid"
)

// CreateRequest asks to borrow an item over a date range. The actor must be
// a circle-mate of the owner and may not request their own item.
func CreateRequest(s models.State, actorID, itemID, startDate, endDate string) (models.State, models.Request, error) {
	it, ok := s.ItemByID(itemID)
	if !ok {
		return s, models.Request{}, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	if it.OwnerID == actorID {
		return s, models.Request{}, fmt.Errorf("%w: you cannot request your own item", ErrValidation)
	}
	circle, ok := s.CircleByID(it.CircleID)
	if !ok || !circle.HasMember(actorID) {
		return s, models.Request{}, fmt.Errorf("%w: %s is not in the item's circle", ErrAuthorization, actorID)
	}
	if startDate == "" || endDate == "" {
		return s, models.Request{}, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	start, err := time.Parse(models.DateFormat, startDate)
	if err != nil {
		return s, models.Request{}, fmt.Errorf("%w: bad start date %q", ErrValidation, startDate)
	}
	end, err := time.Parse(models.DateFormat, endDate)
	if err != nil {
		return s, models.Request{}, fmt.Errorf("%w: bad end date %q", ErrValidation, endDate)
	}
	if end.Before(start) {
		return s, models.Request{}, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	req := models.Request{
		ID:         uuid.NewString(),
		ItemID:     it.ID,
		BorrowerID: actorID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.RequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	next := s
	next.Requests = append([]models.Request{req}, s.Requests...)
	return next, req, nil
}

// Approve moves a PENDING request to APPROVED and spawns the ACTIVE loan in
// the same step. The request is kept as the audit record.
//
// Nothing stops approving a second request for an item that already has an
// ACTIVE loan; double-booking is possible and only reported by
// CheckInvariants.
func Approve(s models.State, actorID, requestID string) (models.State, models.Loan, error) {
	idx, req, err := findRequest(s, requestID)
	if err != nil {
		return s, models.Loan{}, err
	}
	it, ok := s.ItemByID(req.ItemID)
	if !ok {
		return s, models.Loan{}, fmt.Errorf("%w: item %s", ErrNotFound, req.ItemID)
	}
	if it.OwnerID != actorID {
		return s, models.Loan{}, fmt.Errorf("%w: only the owner may approve a request", ErrAuthorization)
	}
	if req.Status != models.RequestPending {
		return s, models.Loan{}, fmt.Errorf("%w: request is %s", ErrState, req.Status)
	}

	loan := models.Loan{
		ID:           uuid.NewString(),
		ItemID:       req.ItemID,
		BorrowerID:   req.BorrowerID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       models.LoanActive,
		ReturnPhotos: []string{},
	}
	next := s
	next.Requests = append([]models.Request(nil), s.Requests...)
	next.Requests[idx].Status = models.RequestApproved
	next.Loans = append([]models.Loan{loan}, s.Loans...)
	return next, loan, nil
}

// Decline moves a PENDING request to DECLINED. No loan is created.
func Decline(s models.State, actorID, requestID string) (models.State, error) {
	idx, req, err := findRequest(s, requestID)
	if err != nil {
		return s, err
	}
	it, ok := s.ItemByID(req.ItemID)
	if !ok {
		return s, fmt.Errorf("%w: item %s", ErrNotFound, req.ItemID)
	}
	if it.OwnerID != actorID {
		return s, fmt.Errorf("%w: only the owner may decline a request", ErrAuthorization)
	}
	if req.Status != models.RequestPending {
		return s, fmt.Errorf("%w: request is %s", ErrState, req.Status)
	}

	next := s
	next.Requests = append([]models.Request(nil), s.Requests...)
	next.Requests[idx].Status = models.RequestDeclined
	return next, nil
}

func findRequest(s models.State, id string) (int, models.Request, error) {
	for i, r := range s.Requests {
		if r.ID == id {
			return i, r, nil
		}
	}
	return -1, models.Request{}, fmt.Errorf("%w: request %s", ErrNotFound, id)
}
