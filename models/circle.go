package models

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Circle is a named group of members who can see and borrow each other's
// tools. Joining happens via the invite code.
type Circle struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	InviteCode string   `json:"inviteCode"`
	Members    []string `json:"members"`
}

func (c Circle) HasMember(id string) bool {
	for _, m := range c.Members {
		if m == id {
			return true
		}
	}
	return false
}

// NewInviteCode builds codes like "FAM-3F9AB" from the circle name.
func NewInviteCode(name string) string {
	var prefix strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			prefix.WriteRune(unicode.ToUpper(r))
		}
		if prefix.Len() >= 3 {
			break
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("CIR")
	}
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix.String() + "-" + strings.ToUpper(raw[:5])
}
