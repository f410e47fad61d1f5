package models

// Candidate is a read-only projection of another user's profile, surfaced
// for swiping. It carries no credential and is never mutated; once swiped
// it leaves the discovery queue and does not re-enter.
//
// Placeholder marks entries from the documented degraded-mode fallback set
// used when the very first feed page cannot be loaded. The UI may render
// them differently; swipes on placeholders are not recorded remotely.
type Candidate struct {
	ID          string
	FirstName   string
	LastName    string
	Bio         string
	Age         int
	Gender      string
	Interests   []string
	Location    string
	Placeholder bool
}

// Match is a confirmed mutual like reported by the swipe endpoint.
type Match struct {
	ID          string
	CandidateID string
}
