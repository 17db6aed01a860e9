package engine

import (
	"fmt"

	"Gin_postgres_redis_toolshare/models"
)

// MarkReturned closes an ACTIVE loan, attaching optional notes and up to
// three return photos. Only the owner of the underlying item may do this;
// the original request stays APPROVED.
func MarkReturned(s models.State, actorID, loanID, notes string, photos []string) (models.State, models.Loan, error) {
	idx := -1
	for i, l := range s.Loans {
		if l.ID == loanID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, models.Loan{}, fmt.Errorf("%w: loan %s", ErrNotFound, loanID)
	}
	loan := s.Loans[idx]
	it, ok := s.ItemByID(loan.ItemID)
	if !ok {
		return s, models.Loan{}, fmt.Errorf("%w: item %s", ErrNotFound, loan.ItemID)
	}
	if it.OwnerID != actorID {
		return s, models.Loan{}, fmt.Errorf("%w: only the owner may mark a loan returned", ErrAuthorization)
	}
	if loan.Status != models.LoanActive {
		return s, models.Loan{}, fmt.Errorf("%w: loan is %s", ErrState, loan.Status)
	}

	loan.Status = models.LoanReturned
	loan.ReturnNotes = notes
	loan.ReturnPhotos = models.ClampPhotos(photos)
	if loan.ReturnPhotos == nil {
		loan.ReturnPhotos = []string{}
	}

	next := s
	next.Loans = append([]models.Loan(nil), s.Loans...)
	next.Loans[idx] = loan
	return next, loan, nil
}
