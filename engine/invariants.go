package engine

import (
	"fmt"

	"Gin_postgres_redis_toolshare/models"
)

const (
	ViolationOrphanedLoan     = "orphaned_loan_item"
	ViolationOrphanedRequest  = "orphaned_request_item"
	ViolationDoubleActiveLoan = "double_active_loan"
	ViolationSelfRequest      = "self_request"
	ViolationOwnerNotInCircle = "owner_not_in_circle"
)

// Violation is one detected inconsistency in a snapshot.
type Violation struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// CheckInvariants reports inconsistencies the lifecycle does not prevent:
// loans and requests pointing at deleted items, items with more than one
// ACTIVE loan, borrowers matching owners, and owners outside their item's
// circle. It never mutates or blocks anything; the gaps are visible here so
// they can be fixed deliberately rather than papered over.
func CheckInvariants(s models.State) []Violation {
	var out []Violation

	activePerItem := map[string]int{}
	for _, l := range s.Loans {
		if _, ok := s.ItemByID(l.ItemID); !ok {
			out = append(out, Violation{
				Kind:   ViolationOrphanedLoan,
				Detail: fmt.Sprintf("loan %s references missing item %s", l.ID, l.ItemID),
			})
		}
		if l.Status == models.LoanActive {
			activePerItem[l.ItemID]++
		}
	}
	for itemID, n := range activePerItem {
		if n > 1 {
			out = append(out, Violation{
				Kind:   ViolationDoubleActiveLoan,
				Detail: fmt.Sprintf("item %s has %d ACTIVE loans", itemID, n),
			})
		}
	}

	for _, r := range s.Requests {
		it, ok := s.ItemByID(r.ItemID)
		if !ok {
			out = append(out, Violation{
				Kind:   ViolationOrphanedRequest,
				Detail: fmt.Sprintf("request %s references missing item %s", r.ID, r.ItemID),
			})
			continue
		}
		if r.BorrowerID == it.OwnerID {
			out = append(out, Violation{
				Kind:   ViolationSelfRequest,
				Detail: fmt.Sprintf("request %s borrower equals item owner %s", r.ID, it.OwnerID),
			})
		}
	}

	for _, it := range s.Items {
		circle, ok := s.CircleByID(it.CircleID)
		if !ok || !circle.HasMember(it.OwnerID) {
			out = append(out, Violation{
				Kind:   ViolationOwnerNotInCircle,
				Detail: fmt.Sprintf("item %s owner %s is not a member of circle %s", it.ID, it.OwnerID, it.CircleID),
			})
		}
	}

	return out
}
