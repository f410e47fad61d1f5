// Package models defines the client-side shapes for users, profiles and
// discovery candidates. Field names are camelCase internal forms; the wire
// representations live in the dto package.
package models

// User is the authenticated account identity. ProfileID is empty until the
// user has created a matchable profile.
type User struct {
	ID        string
	Email     string
	ProfileID string
}

// HasProfile reports whether the account carries a linked profile record.
func (u User) HasProfile() bool {
	return u.ProfileID != ""
}
