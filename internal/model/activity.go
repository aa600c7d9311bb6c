package model

// Activity represents one extracurricular activity offered by the school.
//
// Activities are keyed by display name (e.g. "Chess Club") in the registry
// and on the wire, so the name is not a struct field. API responses reproduce
// that keying: GET /activities returns {"Chess Club": {...}, ...}.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // advertised capacity, not enforced on signup
	Participants    []string `json:"participants"`     // student emails in signup order, each at most once
}

// HasParticipant returns true if email is already on the roster.
// Matching is exact and case-sensitive.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the activity. The returned participant slice
// is always non-nil so an empty roster marshals as [] rather than null.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
