package store

import (
	"time"

	"Gin_postgres_redis_toolshare/models"

	"github.com/google/uuid"
)

// Seed builds the starter dataset a fresh (or unreadable) install boots with:
// the "Family" circle with two friends and two tools.
func Seed() models.State {
	user := models.User{ID: "you", Name: "You"}
	friends := []models.Friend{
		{ID: "alice", Name: "Alice"},
		{ID: "bob", Name: "Bob"},
	}
	circle := models.Circle{
		ID:         uuid.NewString(),
		Name:       "Family",
		InviteCode: models.NewInviteCode("Family"),
		Members:    []string{user.ID, friends[0].ID, friends[1].ID},
	}
	user.Circles = []string{circle.ID}

	now := time.Now().UTC()
	items := []models.Item{
		{
			ID:               uuid.NewString(),
			OwnerID:          user.ID,
			CircleID:         circle.ID,
			Title:            "Spray Painter",
			Category:         "Painting",
			Photos:           []string{},
			Note:             "Flush nozzle after use.",
			ReplacementValue: 180,
			Availability:     "Weekends",
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			OwnerID:          friends[0].ID,
			CircleID:         circle.ID,
			Title:            "18V Drill + Bits",
			Category:         "Power Tools",
			Photos:           []string{},
			Note:             "Battery ~40 min.",
			ReplacementValue: 120,
			Availability:     "Evenings",
			CreatedAt:        now,
		},
	}

	return models.State{
		User:     user,
		Friends:  friends,
		Circles:  []models.Circle{circle},
		Items:    items,
		Requests: []models.Request{},
		Loans:    []models.Loan{},
	}
}
