package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gin_postgres_redis_toolshare/models"
	"Gin_postgres_redis_toolshare/views"
)

func testState() models.State {
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
			{ID: "i1", OwnerID: "you", CircleID: "c1", Title: "Spray Painter", Category: "Painting"},
			{ID: "i2", OwnerID: "alice", CircleID: "c1", Title: "18V Drill + Bits", Category: "Power Tools"},
			{ID: "i3", OwnerID: "alice", CircleID: "c1", Title: "Paint Roller", Category: "Painting"},
		},
	}
}

func TestCircleItemsByOwner(t *testing.T) {
	s := testState()

	members := views.CircleItemsByOwner(s, "c1", views.Filter{})
	require.Len(t, members, 3)
	assert.Equal(t, "You", members[0].MemberName)
	assert.Len(t, members[0].Items, 1)
	assert.Len(t, members[1].Items, 2)
	// Bob owns nothing but still shows up
	assert.Equal(t, "Bob", members[2].MemberName)
	assert.Empty(t, members[2].Items)

	assert.Nil(t, views.CircleItemsByOwner(s, "nope", views.Filter{}))
}

func TestFilterSemantics(t *testing.T) {
	s := testState()

	// substring match is case-insensitive
	members := views.CircleItemsByOwner(s, "c1", views.Filter{Search: "pAiNt"})
	assert.Len(t, members[0].Items, 1) // Spray Painter
	assert.Len(t, members[1].Items, 1) // Paint Roller

	// category is an exact match
	members = views.CircleItemsByOwner(s, "c1", views.Filter{Category: "Painting"})
	assert.Len(t, members[0].Items, 1)
	assert.Len(t, members[1].Items, 1)
	members = views.CircleItemsByOwner(s, "c1", views.Filter{Category: "Paint"})
	assert.Empty(t, members[0].Items)
	assert.Empty(t, members[1].Items)

	// both combine
	members = views.CircleItemsByOwner(s, "c1", views.Filter{Search: "roller", Category: "Painting"})
	assert.Empty(t, members[0].Items)
	assert.Len(t, members[1].Items, 1)
}

func TestPendingRequestsSplit(t *testing.T) {
	s := testState()
	s.Requests = []models.Request{
		{ID: "r1", ItemID: "i1", BorrowerID: "bob", Status: models.RequestPending},
		{ID: "r2", ItemID: "i2", BorrowerID: "you", Status: models.RequestPending},
		{ID: "r3", ItemID: "i1", BorrowerID: "alice", Status: models.RequestDeclined},
		{ID: "r4", ItemID: "gone", BorrowerID: "bob", Status: models.RequestPending},
	}

	pv := views.PendingRequests(s, "you", views.Filter{})
	require.Len(t, pv.Incoming, 1)
	assert.Equal(t, "r1", pv.Incoming[0].ID)
	assert.Equal(t, "Bob", pv.Incoming[0].BorrowerName)
	assert.Equal(t, "Spray Painter", pv.Incoming[0].ItemTitle)

	require.Len(t, pv.Outgoing, 1)
	assert.Equal(t, "r2", pv.Outgoing[0].ID)
	assert.Equal(t, "Alice", pv.Outgoing[0].OwnerName)
}

func TestActiveLoansOverdue(t *testing.T) {
	s := testState()
	s.Loans = []models.Loan{
		{ID: "l1", ItemID: "i1", BorrowerID: "bob", StartDate: "2024-06-01", EndDate: "2024-06-03", Status: models.LoanActive},
		{ID: "l2", ItemID: "i2", BorrowerID: "you", StartDate: "2024-06-01", EndDate: "2024-06-20", Status: models.LoanActive},
		{ID: "l3", ItemID: "i1", BorrowerID: "bob", StartDate: "2024-05-01", EndDate: "2024-05-02", Status: models.LoanReturned},
	}
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	active := views.ActiveLoans(s, views.Filter{}, now)
	require.Len(t, active, 2)
	assert.True(t, active[0].Overdue)
	assert.False(t, active[1].Overdue)
	assert.Equal(t, "you", active[0].OwnerID)
}

func TestLoanHistory(t *testing.T) {
	s := testState()
	s.Loans = []models.Loan{
		{ID: "l1", ItemID: "i1", BorrowerID: "bob", Status: models.LoanReturned, ReturnNotes: "All good"},
		{ID: "l2", ItemID: "i2", BorrowerID: "you", Status: models.LoanActive},
		{ID: "l3", ItemID: "gone", BorrowerID: "bob", Status: models.LoanReturned},
	}

	history := views.LoanHistory(s, views.Filter{})
	require.Len(t, history, 1)
	assert.Equal(t, "l1", history[0].ID)
	assert.Equal(t, "All good", history[0].ReturnNotes)
}

func TestCategories(t *testing.T) {
	s := testState()
	s.Items = append(s.Items, models.Item{ID: "i4", OwnerID: "bob", CircleID: "c1", Title: "Bare"})

	assert.Equal(t, []string{"Painting", "Power Tools"}, views.Categories(s, "c1"))
	assert.Empty(t, views.Categories(s, "nope"))
}
