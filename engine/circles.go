package engine

import (
	"fmt"
	"strings"

	"Gin_postgres_redis_toolshare/models"

	"github.com/google/uuid"
)

// CreateCircle starts a new circle with the actor as its first member and a
// fresh invite code.
func CreateCircle(s models.State, actorID, name string) (models.State, models.Circle, error) {
	if strings.TrimSpace(name) == "" {
		return s, models.Circle{}, fmt.Errorf("%w: circle name is required", ErrValidation)
	}
	if !s.KnownUser(actorID) {
		return s, models.Circle{}, fmt.Errorf("%w: unknown user %s", ErrNotFound, actorID)
	}

	circle := models.Circle{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: models.NewInviteCode(name),
		Members:    []string{actorID},
	}
	next := s
	next.Circles = append(append([]models.Circle(nil), s.Circles...), circle)
	if actorID == s.User.ID {
		next.User.Circles = append(append([]string(nil), s.User.Circles...), circle.ID)
	}
	return next, circle, nil
}

// JoinCircle adds a known user to the circle matching the invite code.
// Joining a circle you are already in is a no-op.
func JoinCircle(s models.State, inviteCode, memberID string) (models.State, models.Circle, error) {
	if !s.KnownUser(memberID) {
		return s, models.Circle{}, fmt.Errorf("%w: unknown user %s", ErrNotFound, memberID)
	}
	idx := -1
	for i, c := range s.Circles {
		if c.InviteCode == inviteCode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, models.Circle{}, fmt.Errorf("%w: invite code %s", ErrNotFound, inviteCode)
	}
	if s.Circles[idx].HasMember(memberID) {
		return s, s.Circles[idx], nil
	}

	next := s
	next.Circles = make([]models.Circle, len(s.Circles))
	for i, c := range s.Circles {
		c.Members = append([]string(nil), c.Members...)
		next.Circles[i] = c
	}
	next.Circles[idx].Members = append(next.Circles[idx].Members, memberID)
	if memberID == s.User.ID {
		next.User.Circles = append(append([]string(nil), s.User.Circles...), next.Circles[idx].ID)
	}
	return next, next.Circles[idx], nil
}

// AddFriend registers a new friend identity. Only the self user manages the
// friend list.
func AddFriend(s models.State, actorID, name string) (models.State, models.Friend, error) {
	if actorID != s.User.ID {
		return s, models.Friend{}, fmt.Errorf("%w: only the account owner may add friends", ErrAuthorization)
	}
	if strings.TrimSpace(name) == "" {
		return s, models.Friend{}, fmt.Errorf("%w: friend name is required", ErrValidation)
	}

	f := models.Friend{ID: uuid.NewString(), Name: name}
	next := s
	next.Friends = append(append([]models.Friend(nil), s.Friends...), f)
	return next, f, nil
}
