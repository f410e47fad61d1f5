package models

import "strings"

// Profile is the current user's own matchable record. It is replaced
// wholesale on every update; partial mutation happens only through the
// profile store.
//
// Interests is an ordered list; duplicates are preserved as entered.
type Profile struct {
	ID        string
	FirstName string
	LastName  string
	Bio       string
	Age       int
	Gender    string
	Interests []string
	Location  string
	IsActive  bool
}

// FullName joins first and last name, trimming the result so a missing
// part does not leave stray whitespace.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
