// Package views holds the read-only projections over a snapshot. Every
// function is pure and recomputes from the state it is handed.
package views

import (
	"strings"
	"time"

	"Gin_postgres_redis_toolshare/models"
)

// Filter narrows projections by a case-insensitive substring match on the
// item title and an exact category match. Zero values match everything.
type Filter struct {
	Search   string
	Category string
}

func (f Filter) matches(it models.Item) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(it.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	return true
}

// MemberItems is one circle member with their matching items.
type MemberItems struct {
	MemberID   string        `json:"memberId"`
	MemberName string        `json:"memberName"`
	Items      []models.Item `json:"items"`
}

// CircleItemsByOwner lists every member of a circle, each with the items
// they own there, filtered. Members with no matches still appear with an
// empty list.
func CircleItemsByOwner(s models.State, circleID string, f Filter) []MemberItems {
	circle, ok := s.CircleByID(circleID)
	if !ok {
		return nil
	}

	out := make([]MemberItems, 0, len(circle.Members))
	for _, memberID := range circle.Members {
		mi := MemberItems{MemberID: memberID, MemberName: s.MemberName(memberID), Items: []models.Item{}}
		for _, it := range s.Items {
			if it.CircleID == circleID && it.OwnerID == memberID && f.matches(it) {
				mi.Items = append(mi.Items, it)
			}
		}
		out = append(out, mi)
	}
	return out
}

// RequestView is a pending request with the names the list screens need.
type RequestView struct {
	models.Request
	ItemTitle    string `json:"itemTitle"`
	BorrowerName string `json:"borrowerName"`
	OwnerName    string `json:"ownerName"`
}

// PendingView splits pending requests by direction relative to one user.
type PendingView struct {
	Incoming []RequestView `json:"incoming"`
	Outgoing []RequestView `json:"outgoing"`
}

// PendingRequests returns PENDING requests against selfID's items (incoming)
// and PENDING requests selfID made (outgoing). Requests whose item is gone
// are dropped.
func PendingRequests(s models.State, selfID string, f Filter) PendingView {
	out := PendingView{Incoming: []RequestView{}, Outgoing: []RequestView{}}
	for _, r := range s.Requests {
		if r.Status != models.RequestPending {
			continue
		}
		it, ok := s.ItemByID(r.ItemID)
		if !ok || !f.matches(it) {
			continue
		}
		rv := RequestView{
			Request:      r,
			ItemTitle:    it.Title,
			BorrowerName: s.MemberName(r.BorrowerID),
			OwnerName:    s.MemberName(it.OwnerID),
		}
		if it.OwnerID == selfID {
			out.Incoming = append(out.Incoming, rv)
		}
		if r.BorrowerID == selfID {
			out.Outgoing = append(out.Outgoing, rv)
		}
	}
	return out
}

// LoanView is a loan with display names and the computed overdue flag.
type LoanView struct {
	models.Loan
	ItemTitle    string `json:"itemTitle"`
	BorrowerName string `json:"borrowerName"`
	OwnerID      string `json:"ownerId"`
	Overdue      bool   `json:"overdue"`
}

// ActiveLoans lists ACTIVE loans, flagging the ones whose end date has
// passed. Loans whose item is gone are dropped.
func ActiveLoans(s models.State, f Filter, now time.Time) []LoanView {
	out := []LoanView{}
	for _, l := range s.Loans {
		if l.Status != models.LoanActive {
			continue
		}
		it, ok := s.ItemByID(l.ItemID)
		if !ok || !f.matches(it) {
			continue
		}
		overdue := false
		if end, err := time.Parse(models.DateFormat, l.EndDate); err == nil {
			overdue = end.Before(now)
		}
		out = append(out, LoanView{
			Loan:         l,
			ItemTitle:    it.Title,
			BorrowerName: s.MemberName(l.BorrowerID),
			OwnerID:      it.OwnerID,
			Overdue:      overdue,
		})
	}
	return out
}

// LoanHistory lists RETURNED loans. Loans whose item is gone are dropped.
func LoanHistory(s models.State, f Filter) []LoanView {
	out := []LoanView{}
	for _, l := range s.Loans {
		if l.Status != models.LoanReturned {
			continue
		}
		it, ok := s.ItemByID(l.ItemID)
		if !ok || !f.matches(it) {
			continue
		}
		out = append(out, LoanView{
			Loan:         l,
			ItemTitle:    it.Title,
			BorrowerName: s.MemberName(l.BorrowerID),
			OwnerID:      it.OwnerID,
		})
	}
	return out
}

// Categories returns the distinct non-empty categories in a circle, in
// first-seen order, for the filter dropdown.
func Categories(s models.State, circleID string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, it := range s.Items {
		if it.CircleID != circleID || it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}
