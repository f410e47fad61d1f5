package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dpetrovs/ember/internal/client/api"
	"github.com/dpetrovs/ember/internal/client/credstore"
	"github.com/dpetrovs/ember/internal/client/dto"
	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/notify"
	"github.com/dpetrovs/ember/internal/common"
	"github.com/dpetrovs/ember/internal/logging"
)

// Store is the session state holder. All mutations happen through its
// methods; reads go through accessors that copy state out under the lock.
//
// The credential and the user identity are set and cleared together: a
// non-nil user implies an installed bearer token and vice versa.
type Store struct {
	client   api.Client
	creds    credstore.Store
	notifier notify.Notifier
	log      logging.Logger

	mu      sync.Mutex
	user    *models.User
	profile *models.Profile
	loading bool
	lastErr error
}

// New wires a session store to its collaborators.
func New(client api.Client, creds credstore.Store, notifier notify.Notifier, log logging.Logger) *Store {
	return &Store{
		client:   client,
		creds:    creds,
		notifier: notifier,
		log:      log.With("component", "session"),
	}
}

// State derives the current phase from the raw fields. Never cached.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	switch {
	case s.user != nil && s.profile != nil:
		return AuthenticatedWithProfile
	case s.user != nil:
		return AuthenticatedNoProfile
	case s.loading:
		return Authenticating
	default:
		return Anonymous
	}
}

// User returns a copy of the authenticated user, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Profile returns a copy of the loaded profile, if any.
func (s *Store) Profile() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.Profile{}, false
	}
	return *s.profile, true
}

// Err returns the last recorded error, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Loading reports whether a session operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// beginOp sets the loading flag, short-circuiting when an operation is
// already in flight. Callers that get false must return without touching
// state.
func (s *Store) beginOp(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		s.log.Debug(ctx, "operation dropped, another in flight", "op", name)
		return false
	}
	s.loading = true
	s.lastErr = nil
	return true
}

func (s *Store) endOp() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Login exchanges credentials for a session. On success the profile load is
// attempted immediately; a missing or unloadable profile leaves the session
// in AuthenticatedNoProfile without failing the login.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrValidationFailure)
	}
	if !s.beginOp(ctx, "login") {
		return nil
	}
	defer s.endOp()

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.recordErr(err)
		notify.ShowError(s.notifier, "Login Failed", err.Error())
		return err
	}

	s.installSession(ctx, resp)
	s.notifier.Notify(notify.KindSuccess, "Welcome back!", "You have been successfully logged in.", notify.DurationMedium)

	if resp.User.ProfileID != "" {
		s.loadProfile(ctx, resp.User.ProfileID)
	}
	s.logTransition(ctx, "login")
	return nil
}

// Register creates a new account. New accounts never carry a profile id, so
// the resulting state is always AuthenticatedNoProfile.
func (s *Store) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrValidationFailure)
	}
	if !s.beginOp(ctx, "register") {
		return nil
	}
	defer s.endOp()

	resp, err := s.client.Register(ctx, email, password)
	if err != nil {
		s.recordErr(err)
		notify.ShowError(s.notifier, "Registration Failed", err.Error())
		return err
	}

	resp.User.ProfileID = "" // the register endpoint never links a profile
	s.installSession(ctx, resp)
	s.notifier.Notify(notify.KindSuccess, "Account Created!", "Your account has been successfully created.", notify.DurationMedium)
	s.notifier.Notify(notify.KindInfo, "Complete Your Profile", "Please create your profile to start matching!", notify.DurationLong)
	s.logTransition(ctx, "register")
	return nil
}

// Restore validates a persisted credential at startup. It is idempotent and
// a no-op when no credential is stored. A failure not attributable to
// network unavailability discards the credential; a network failure keeps
// it for the next start but leaves the session anonymous.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.creds.Credential(ctx)
	if err != nil {
		return fmt.Errorf("read stored credential: %w", err)
	}
	if token == "" {
		return nil
	}
	if !s.beginOp(ctx, "restore") {
		return nil
	}
	defer s.endOp()

	if expired(token) {
		s.log.Info(ctx, "stored credential expired, discarding")
		s.discardCredential(ctx, true)
		return nil
	}

	s.client.SetToken(token)

	userDTO, err := s.client.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNetworkFailure) {
			// Transient: keep the stored credential, stay anonymous.
			s.client.SetToken("")
			s.log.Warn(ctx, "session restore skipped, server unreachable", "error", err)
			return nil
		}
		s.discardCredential(ctx, true)
		return nil
	}

	user := dto.UserFromDTO(userDTO)
	s.mu.Lock()
	s.user = &user
	s.profile = nil
	s.mu.Unlock()

	if user.ProfileID != "" {
		s.loadProfile(ctx, user.ProfileID)
	}
	s.notifier.Notify(notify.KindSuccess, "Welcome back!",
		fmt.Sprintf("Hello %s, you're automatically signed in.", user.Email), notify.DurationShort)
	s.logTransition(ctx, "restore")
	return nil
}

// Logout invalidates the session remotely on a best-effort basis and then
// unconditionally resets local state to anonymous.
func (s *Store) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
		s.notifier.Notify(notify.KindWarn, "Logout Warning",
			"There was an issue with logout, but you have been signed out locally.", notify.DurationMedium)
	} else {
		s.notifier.Notify(notify.KindInfo, "Logged Out", "You have been successfully logged out.", notify.DurationShort)
	}
	s.resetLocal(ctx)
	s.logTransition(ctx, "logout")
}

// DeleteAccount permanently removes the account. On failure state is left
// unchanged and the error is surfaced to the caller.
func (s *Store) DeleteAccount(ctx context.Context) error {
	if !s.State().Authenticated() {
		return fmt.Errorf("%w: not signed in", common.ErrValidationFailure)
	}
	if !s.beginOp(ctx, "delete account") {
		return nil
	}
	defer s.endOp()

	if err := s.client.DeleteAccount(ctx); err != nil {
		s.recordErr(err)
		notify.ShowError(s.notifier, "Delete Account Failed", err.Error())
		return err
	}

	s.resetLocal(ctx)
	s.notifier.Notify(notify.KindSuccess, "Account Deleted", "Your account has been permanently deleted.", notify.DurationMedium)
	s.logTransition(ctx, "delete account")
	return nil
}

// SetProfile is the narrow contract through which the profile store feeds
// profile changes back into the session. Passing nil clears the profile.
func (s *Store) SetProfile(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.profile = nil
		return
	}
	cp := *p
	s.profile = &cp
}

// UpdateProfileID links a freshly created profile to the user record.
func (s *Store) UpdateProfileID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.ProfileID = id
	}
}

// installSession atomically sets user identity and credential, persisting
// the token for the next start.
func (s *Store) installSession(ctx context.Context, resp dto.LoginResponseDTO) {
	user := dto.UserFromDTO(resp.User)

	s.mu.Lock()
	s.user = &user
	s.profile = nil
	s.mu.Unlock()

	s.client.SetToken(resp.Token)
	if err := s.creds.SetCredential(ctx, resp.Token); err != nil {
		s.log.Warn(ctx, "failed to persist credential", "error", err)
	}
}

// loadProfile fetches the user's own profile after login/restore. Failure
// leaves the profile nil without invalidating the session; consistency
// between user.ProfileID and the loaded profile is eventual.
func (s *Store) loadProfile(ctx context.Context, profileID string) {
	p, err := s.client.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "profile not created yet", "profile_id", profileID)
		} else {
			s.log.Error(ctx, "profile load failed", "profile_id", profileID, "error", err)
		}
		return
	}
	profile := dto.ProfileFromDTO(p)
	s.SetProfile(&profile)
}

func (s *Store) resetLocal(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.profile = nil
	s.lastErr = nil
	s.mu.Unlock()

	s.client.SetToken("")
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored credential", "error", err)
	}
}

func (s *Store) discardCredential(ctx context.Context, notifyExpired bool) {
	s.resetLocal(ctx)
	if notifyExpired {
		s.notifier.Notify(notify.KindWarn, "Session Expired",
			"Your session has expired. Please log in again.", notify.DurationMedium)
	}
}

func (s *Store) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Store) logTransition(ctx context.Context, op string) {
	s.log.Info(ctx, "session transition", "op", op, "state", s.State().String())
}

// expired reports whether the token carries an exp claim in the past. The
// signature is not verified client-side; tokens that do not parse as JWTs
// are passed through to server-side validation.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
