// Package api contains the remote Ember API client: a transport-neutral
// Client interface plus an HTTP implementation speaking JSON over HTTPS
// with a bearer credential.
package api

import (
	"context"

	"github.com/dpetrovs/ember/internal/client/dto"
)

// Client defines the remote operations the stores depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Login exchanges credentials for a user record and a bearer token.
	Login(ctx context.Context, email, password string) (dto.LoginResponseDTO, error)
	// Register creates a new account. New accounts never carry a profile id.
	Register(ctx context.Context, email, password string) (dto.LoginResponseDTO, error)
	// Logout invalidates the session server-side.
	Logout(ctx context.Context) error
	// CurrentUser validates the held token by fetching the account record.
	CurrentUser(ctx context.Context) (dto.UserDTO, error)
	// DeleteAccount permanently removes the account.
	DeleteAccount(ctx context.Context) error

	// GetProfile fetches the current user's own profile.
	GetProfile(ctx context.Context) (dto.ProfileDTO, error)
	// GetProfileByID fetches a profile by id.
	GetProfileByID(ctx context.Context, id string) (dto.ProfileDTO, error)
	// CreateProfile creates the current user's profile.
	CreateProfile(ctx context.Context, p dto.CreateProfileDTO) (dto.ProfileDTO, error)
	// UpdateProfile replaces the current user's profile wholesale.
	UpdateProfile(ctx context.Context, p dto.UpdateProfileDTO) (dto.ProfileDTO, error)
	// DeleteProfile removes the current user's profile.
	DeleteProfile(ctx context.Context) error

	// GetFeed fetches one page of swipeable candidates.
	GetFeed(ctx context.Context, page, limit int) (dto.FeedResponseDTO, error)
	// RecordSwipe records a like/pass decision; the response may indicate
	// a mutual match.
	RecordSwipe(ctx context.Context, targetUserID string, isLike bool) (dto.SwipeResponseDTO, error)

	// SetToken installs the bearer credential for subsequent requests.
	// An empty string clears it.
	SetToken(token string)
	// Token returns the currently installed bearer credential.
	Token() string
}
