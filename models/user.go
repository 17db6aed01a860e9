package models

// User is the one local account operating this instance.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Circles []string `json:"circles"`
}

// Friend is an identity known to the user. Friends own items and borrow
// tools but have no session state of their own here.
type Friend struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
