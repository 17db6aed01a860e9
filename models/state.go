package models

// State is the whole dataset: the self user plus everything shared in its
// circles. It is persisted as one document and replaced wholesale after
// every change; there are no partial writes.
type State struct {
	User     User      `json:"user"`
	Friends  []Friend  `json:"friends"`
	Circles  []Circle  `json:"circles"`
	Items    []Item    `json:"items"`
	Requests []Request `json:"requests"`
	Loans    []Loan    `json:"loans"`
}

// Clone deep-copies the state so transitions can work on a scratch copy
// without touching the committed one.
func (s State) Clone() State {
	out := s
	out.User.Circles = copyStrings(s.User.Circles)
	out.Friends = make([]Friend, len(s.Friends))
	copy(out.Friends, s.Friends)
	out.Circles = make([]Circle, len(s.Circles))
	for i, c := range s.Circles {
		c.Members = copyStrings(c.Members)
		out.Circles[i] = c
	}
	out.Items = make([]Item, len(s.Items))
	for i, it := range s.Items {
		it.Photos = copyStrings(it.Photos)
		out.Items[i] = it
	}
	out.Requests = make([]Request, len(s.Requests))
	copy(out.Requests, s.Requests)
	out.Loans = make([]Loan, len(s.Loans))
	for i, l := range s.Loans {
		l.ReturnPhotos = copyStrings(l.ReturnPhotos)
		out.Loans[i] = l
	}
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// KnownUser reports whether id names the self user or a friend.
func (s State) KnownUser(id string) bool {
	if s.User.ID == id {
		return true
	}
	for _, f := range s.Friends {
		if f.ID == id {
			return true
		}
	}
	return false
}

// MemberName resolves a member id to a display name, "" if unknown.
func (s State) MemberName(id string) string {
	if s.User.ID == id {
		return s.User.Name
	}
	for _, f := range s.Friends {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}

func (s State) CircleByID(id string) (Circle, bool) {
	for _, c := range s.Circles {
		if c.ID == id {
			return c, true
		}
	}
	return Circle{}, false
}

func (s State) ItemByID(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (s State) RequestByID(id string) (Request, bool) {
	for _, r := range s.Requests {
		if r.ID == id {
			return r, true
		}
	}
	return Request{}, false
}

func (s State) LoanByID(id string) (Loan, bool) {
	for _, l := range s.Loans {
		if l.ID == id {
			return l, true
		}
	}
	return Loan{}, false
}
