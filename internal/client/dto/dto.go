// Package dto defines the wire-format records exchanged with the Ember
// backend and the pure mapping functions between them and the internal
// shapes in models.
//
// Wire records use snake_case field names with optional fields explicit;
// mappers are total: missing optionals map to zero values (0, false, "",
// empty list). No validation happens here; validation is the stores'
// concern.
package dto

// UserDTO mirrors the backend user record. ProfileID is absent for
// accounts that have not created a profile yet.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	ProfileID string `json:"profile_id,omitempty"`
}

// LoginResponseDTO is the body of /auth/login and /auth/register.
type LoginResponseDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// RefreshResponseDTO is the body of /auth/refresh.
type RefreshResponseDTO struct {
	Token string `json:"token"`
}

// ProfileDTO mirrors the backend profile record, used for both the current
// user's profile and feed entries.
type ProfileDTO struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Bio       string   `json:"bio"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	Location  string   `json:"location"`
}

// CreateProfileDTO is the request body of POST /profiles.
type CreateProfileDTO struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Bio       string   `json:"bio"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	Location  string   `json:"location"`
}

// UpdateProfileDTO is the request body of PUT /profiles. Unlike create it
// carries the activity flag.
type UpdateProfileDTO struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Bio       string   `json:"bio"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	Location  string   `json:"location"`
	IsActive  bool     `json:"is_active"`
}

// FeedResponseDTO is the body of GET /users/feed. Unlike most endpoints it
// is returned raw, without the response envelope.
type FeedResponseDTO struct {
	Profiles []ProfileDTO `json:"profiles"`
	HasMore  bool         `json:"has_more"`
	NextPage int          `json:"next_page,omitempty"`
}

// SwipeRequestDTO is the request body of POST /swipes.
type SwipeRequestDTO struct {
	TargetUserID string `json:"target_user_id"`
	IsLike       bool   `json:"is_like"`
}

// SwipeResponseDTO is the body of POST /swipes, returned raw. MatchID is
// set only when IsMatch is true.
type SwipeResponseDTO struct {
	IsMatch bool   `json:"is_match"`
	MatchID string `json:"match_id,omitempty"`
}

// CredentialsDTO is the request body of /auth/login and /auth/register.
type CredentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
