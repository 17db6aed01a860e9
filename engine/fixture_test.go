package engine_test

import (
	"Gin_postgres_redis_toolshare/models"
)

// fixture is the Family circle: "you" with a Spray Painter, Alice with a
// drill, Bob with nothing yet.
func fixture() models.State {
	return models.State{
		User:    models.User{ID: "you", Name: "You", Circles: []string{"c1"}},
		Friends: []models.Friend{{ID: "alice", Name: "Alice"}, {ID: "bob", Name: "Bob"}},
		Circles: []models.Circle{{
			ID:         "c1",
			Name:       "Family",
			InviteCode: "FAM-ABCDE",
			Members:    []string{"you", "alice", "bob"},
		}},
		Items: []models.Item{
			{ID: "i1", OwnerID: "you", CircleID: "c1", Title: "Spray Painter", Category: "Painting", Photos: []string{}},
			{ID: "i2", OwnerID: "alice", CircleID: "c1", Title: "18V Drill + Bits", Category: "Power Tools", Photos: []string{}},
		},
		Requests: []models.Request{},
		Loans:    []models.Loan{},
	}
}

func pendingRequest(id, itemID, borrowerID string) models.Request {
	return models.Request{
		ID:         id,
		ItemID:     itemID,
		BorrowerID: borrowerID,
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-03",
		Status:     models.RequestPending,
	}
}

func activeLoan(id, itemID, borrowerID string) models.Loan {
	return models.Loan{
		ID:           id,
		ItemID:       itemID,
		BorrowerID:   borrowerID,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
		Status:       models.LoanActive,
		ReturnPhotos: []string{},
	}
}
