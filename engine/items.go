package engine

import (
	"fmt"
	"strings"
	"time"

	"Gin_postgres_redis_toolshare/models"

	"github.com/google/uuid"
)

// ItemInput carries the mutable item fields. Photos are already-encoded
// data URLs; nil means "keep what is there" on update.
type ItemInput struct {
	CircleID         string
	Title            string
	Category         string
	Note             string
	ReplacementValue float64
	Availability     string
	Photos           []string
}

func (in ItemInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.ReplacementValue < 0 {
		return fmt.Errorf("%w: replacement value must not be negative", ErrValidation)
	}
	return nil
}

// CreateItem lists a new tool owned by the actor in the given circle.
func CreateItem(s models.State, actorID string, in ItemInput) (models.State, models.Item, error) {
	if err := in.validate(); err != nil {
		return s, models.Item{}, err
	}
	circle, ok := s.CircleByID(in.CircleID)
	if !ok {
		return s, models.Item{}, fmt.Errorf("%w: circle %s", ErrNotFound, in.CircleID)
	}
	if !circle.HasMember(actorID) {
		return s, models.Item{}, fmt.Errorf("%w: %s is not a member of %s", ErrAuthorization, actorID, circle.Name)
	}

	it := models.Item{
		ID:               uuid.NewString(),
		OwnerID:          actorID,
		CircleID:         circle.ID,
		Title:            in.Title,
		Category:         in.Category,
		Photos:           models.ClampPhotos(in.Photos),
		Note:             in.Note,
		ReplacementValue: in.ReplacementValue,
		Availability:     in.Availability,
		CreatedAt:        time.Now().UTC(),
	}
	if it.Photos == nil {
		it.Photos = []string{}
	}

	next := s
	next.Items = append([]models.Item{it}, s.Items...)
	return next, it, nil
}

// UpdateItem replaces the mutable fields of an item the actor owns. The
// photo list is only swapped when new photos are supplied.
func UpdateItem(s models.State, actorID, itemID string, in ItemInput) (models.State, models.Item, error) {
	if err := in.validate(); err != nil {
		return s, models.Item{}, err
	}
	idx := -1
	for i, it := range s.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, models.Item{}, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	if s.Items[idx].OwnerID != actorID {
		return s, models.Item{}, fmt.Errorf("%w: only the owner may edit an item", ErrAuthorization)
	}

	next := s
	next.Items = append([]models.Item(nil), s.Items...)
	it := next.Items[idx]
	it.Title = in.Title
	it.Category = in.Category
	it.Note = in.Note
	it.ReplacementValue = in.ReplacementValue
	it.Availability = in.Availability
	if len(in.Photos) > 0 {
		it.Photos = models.ClampPhotos(in.Photos)
	}
	next.Items[idx] = it
	return next, it, nil
}

// DeleteItem removes an item the actor owns and cascades to every request
// referencing it. Loans are deliberately left alone, even ACTIVE ones; the
// dangling item reference shows up in CheckInvariants instead.
func DeleteItem(s models.State, actorID, itemID string) (models.State, error) {
	it, ok := s.ItemByID(itemID)
	if !ok {
		return s, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	if it.OwnerID != actorID {
		return s, fmt.Errorf("%w: only the owner may delete an item", ErrAuthorization)
	}

	next := s
	next.Items = make([]models.Item, 0, len(s.Items)-1)
	for _, x := range s.Items {
		if x.ID != itemID {
			next.Items = append(next.Items, x)
		}
	}
	next.Requests = make([]models.Request, 0, len(s.Requests))
	for _, r := range s.Requests {
		if r.ItemID != itemID {
			next.Requests = append(next.Requests, r)
		}
	}
	return next, nil
}
