// Package profile owns the current user's own matchable record: creation,
// wholesale update, load and deletion. Changes propagate into the session
// store through its narrow SetProfile/UpdateProfileID contract rather than
// by reaching into its fields.
package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dpetrovs/ember/internal/client/api"
	"github.com/dpetrovs/ember/internal/client/dto"
	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/notify"
	"github.com/dpetrovs/ember/internal/common"
	"github.com/dpetrovs/ember/internal/logging"
)

// SessionSink is the part of the session store the profile store is allowed
// to mutate.
type SessionSink interface {
	SetProfile(p *models.Profile)
	UpdateProfileID(id string)
}

// Store is the profile state holder. Its lifecycle is independent from the
// session: a failed load leaves the profile nil without touching the
// session's credential.
type Store struct {
	client   api.Client
	session  SessionSink
	notifier notify.Notifier
	log      logging.Logger

	mu      sync.Mutex
	profile *models.Profile
	loading bool
	lastErr error
}

func New(client api.Client, session SessionSink, notifier notify.Notifier, log logging.Logger) *Store {
	return &Store{
		client:   client,
		session:  session,
		notifier: notifier,
		log:      log.With("component", "profile"),
	}
}

// Profile returns a copy of the held profile, if any.
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

// Loading reports whether a profile operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

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

// Create submits a new profile. On success the server-assigned record
// replaces local state and is linked into the session.
func (s *Store) Create(ctx context.Context, p models.Profile) error {
	if !s.beginOp(ctx, "create") {
		return nil
	}
	defer s.endOp()

	created, err := s.client.CreateProfile(ctx, dto.ProfileToCreateDTO(p))
	if err != nil {
		s.fail(ctx, "Profile Creation Failed", err)
		return err
	}

	profile := dto.ProfileFromDTO(created)
	s.replace(&profile)
	s.session.SetProfile(&profile)
	s.session.UpdateProfileID(profile.ID)
	s.notifier.Notify(notify.KindSuccess, "Profile Created!", "Your profile has been successfully created.", notify.DurationMedium)
	return nil
}

// Update replaces the profile wholesale with the server's response.
func (s *Store) Update(ctx context.Context, p models.Profile) error {
	if !s.beginOp(ctx, "update") {
		return nil
	}
	defer s.endOp()

	updated, err := s.client.UpdateProfile(ctx, dto.ProfileToUpdateDTO(p))
	if err != nil {
		s.fail(ctx, "Profile Update Failed", err)
		return err
	}

	profile := dto.ProfileFromDTO(updated)
	s.replace(&profile)
	s.session.SetProfile(&profile)
	s.notifier.Notify(notify.KindSuccess, "Profile Updated!", "Your profile has been successfully updated.", notify.DurationShort)
	return nil
}

// Load fetches a profile by id. A NotFound is the normal "no profile yet"
// signal: the local profile is cleared and no error is returned.
func (s *Store) Load(ctx context.Context, id string) error {
	if !s.beginOp(ctx, "load") {
		return nil
	}
	defer s.endOp()

	fetched, err := s.client.GetProfileByID(ctx, id)
	if err != nil {
		s.replace(nil)
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "profile not found, needs to be created", "profile_id", id)
			return nil
		}
		s.recordErr(err)
		s.log.Error(ctx, "profile load failed", "profile_id", id, "error", err)
		return err
	}

	profile := dto.ProfileFromDTO(fetched)
	s.replace(&profile)
	return nil
}

// Delete removes the current user's profile, clearing it from both this
// store and the session.
func (s *Store) Delete(ctx context.Context) error {
	if !s.beginOp(ctx, "delete") {
		return nil
	}
	defer s.endOp()

	if err := s.client.DeleteProfile(ctx); err != nil {
		s.fail(ctx, "Profile Deletion Failed", err)
		return err
	}

	s.replace(nil)
	s.session.SetProfile(nil)
	s.notifier.Notify(notify.KindInfo, "Profile Deleted", "Your profile has been successfully deleted.", notify.DurationMedium)
	return nil
}

// Clear resets local state without remote calls (used on logout).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.lastErr = nil
}

func (s *Store) replace(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Store) recordErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func (s *Store) fail(ctx context.Context, title string, err error) {
	s.recordErr(err)
	notify.ShowError(s.notifier, title, err.Error())
	s.log.Error(ctx, title, "error", fmt.Sprintf("%v", err))
}
