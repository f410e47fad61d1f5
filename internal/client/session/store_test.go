package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/ember/internal/client/api"
	"github.com/dpetrovs/ember/internal/client/dto"
	"github.com/dpetrovs/ember/internal/client/notify"
	"github.com/dpetrovs/ember/internal/common"
	"github.com/dpetrovs/ember/internal/logging"
)

// ---- fakes ----

type fakeClient struct {
	mu    sync.Mutex
	token string

	LoginResp dto.LoginResponseDTO
	LoginErr  error
	LoginGate chan struct{} // when set, Login blocks until closed
	LoginN    int

	RegisterResp dto.LoginResponseDTO
	RegisterErr  error

	CurrentUserResp dto.UserDTO
	CurrentUserErr  error

	ProfileResp dto.ProfileDTO
	ProfileErr  error

	LogoutErr        error
	DeleteAccountErr error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (dto.LoginResponseDTO, error) {
	f.mu.Lock()
	f.LoginN++
	gate := f.LoginGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (dto.LoginResponseDTO, error) {
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context) error { return f.LogoutErr }

func (f *fakeClient) CurrentUser(ctx context.Context) (dto.UserDTO, error) {
	return f.CurrentUserResp, f.CurrentUserErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error { return f.DeleteAccountErr }

func (f *fakeClient) GetProfile(ctx context.Context) (dto.ProfileDTO, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeClient) GetProfileByID(ctx context.Context, id string) (dto.ProfileDTO, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeClient) CreateProfile(ctx context.Context, p dto.CreateProfileDTO) (dto.ProfileDTO, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, p dto.UpdateProfileDTO) (dto.ProfileDTO, error) {
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeClient) DeleteProfile(ctx context.Context) error { return nil }

func (f *fakeClient) GetFeed(ctx context.Context, page, limit int) (dto.FeedResponseDTO, error) {
	return dto.FeedResponseDTO{}, nil
}

func (f *fakeClient) RecordSwipe(ctx context.Context, targetUserID string, isLike bool) (dto.SwipeResponseDTO, error) {
	return dto.SwipeResponseDTO{}, nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

var _ api.Client = (*fakeClient)(nil)

type fakeCreds struct {
	mu    sync.Mutex
	value string
}

func (f *fakeCreds) Credential(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, nil
}

func (f *fakeCreds) SetCredential(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = token
	return nil
}

func (f *fakeCreds) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = ""
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) Notify(kind notify.Kind, title, body string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, string(kind)+": "+title)
}

func (f *fakeNotifier) titles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func newStore(client *fakeClient) (*Store, *fakeClient, *fakeCreds, *fakeNotifier) {
	creds := &fakeCreds{}
	n := &fakeNotifier{}
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	return New(client, creds, n, log), client, creds, n
}

func loginResp(profileID string) dto.LoginResponseDTO {
	return dto.LoginResponseDTO{
		User:  dto.UserDTO{ID: "u1", Email: "a@b.c", ProfileID: profileID},
		Token: "tok",
	}
}

// ---- tests ----

func TestLogin_EmptyInputIsValidationFailure(t *testing.T) {
	s, _, _, _ := newStore(&fakeClient{})
	err := s.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, common.ErrValidationFailure)
	require.Equal(t, Anonymous, s.State())
}

func TestLogin_WithProfileID_LandsInAuthenticatedWithProfile(t *testing.T) {
	client := &fakeClient{
		LoginResp:   loginResp("p1"),
		ProfileResp: dto.ProfileDTO{ID: "p1", FirstName: "A"},
	}
	s, _, creds, _ := newStore(client)

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	require.Equal(t, AuthenticatedWithProfile, s.State())
	u, ok := s.User()
	require.True(t, ok)
	require.Equal(t, "u1", u.ID)
	p, ok := s.Profile()
	require.True(t, ok)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, "tok", client.Token())
	require.Equal(t, "tok", creds.value)
}

func TestLogin_WithoutProfileID_LandsInNoProfile(t *testing.T) {
	s, _, _, _ := newStore(&fakeClient{LoginResp: loginResp("")})
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	require.Equal(t, AuthenticatedNoProfile, s.State())
}

func TestLogin_ProfileFetch404_KeepsSessionValid(t *testing.T) {
	client := &fakeClient{
		LoginResp:  loginResp("p1"),
		ProfileErr: common.ErrNotFound,
	}
	s, _, _, _ := newStore(client)

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	require.Equal(t, AuthenticatedNoProfile, s.State())
	_, ok := s.Profile()
	require.False(t, ok)
}

func TestLogin_RemoteFailure_StaysAnonymous(t *testing.T) {
	client := &fakeClient{LoginErr: common.ErrAuthFailure}
	s, _, creds, _ := newStore(client)

	err := s.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, common.ErrAuthFailure)
	require.Equal(t, Anonymous, s.State())
	require.ErrorIs(t, s.Err(), common.ErrAuthFailure)
	require.Empty(t, client.Token())
	require.Empty(t, creds.value)
}

func TestLogin_SecondCallWhileInFlight_ShortCircuits(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{LoginResp: loginResp(""), LoginGate: gate}
	s, _, _, _ := newStore(client)

	done := make(chan error, 1)
	go func() { done <- s.Login(context.Background(), "a@b.c", "pw") }()

	// Wait for the first call to enter the client.
	require.Eventually(t, func() bool {
		client.mu.Lock()
		defer client.mu.Unlock()
		return client.LoginN == 1
	}, time.Second, 5*time.Millisecond)

	// Second call must observe the loading flag and drop.
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	client.mu.Lock()
	require.Equal(t, 1, client.LoginN)
	client.mu.Unlock()

	close(gate)
	require.NoError(t, <-done)
}

func TestRegister_AlwaysNoProfile(t *testing.T) {
	// Even a misbehaving server response with a profile id must not land a
	// fresh registration in the with-profile state.
	client := &fakeClient{RegisterResp: loginResp("p1")}
	s, _, _, _ := newStore(client)

	require.NoError(t, s.Register(context.Background(), "a@b.c", "pw"))
	require.Equal(t, AuthenticatedNoProfile, s.State())
}

func TestRestore_NoStoredCredential_IsNoop(t *testing.T) {
	client := &fakeClient{}
	s, _, _, _ := newStore(client)

	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, Anonymous, s.State())
	require.Empty(t, client.Token())
}

func TestRestore_ValidCredential_RestoresSession(t *testing.T) {
	client := &fakeClient{
		CurrentUserResp: dto.UserDTO{ID: "u1", Email: "a@b.c", ProfileID: "p1"},
		ProfileResp:     dto.ProfileDTO{ID: "p1"},
	}
	s, _, creds, _ := newStore(client)
	require.NoError(t, creds.SetCredential(context.Background(), "stored-tok"))

	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, AuthenticatedWithProfile, s.State())
	require.Equal(t, "stored-tok", client.Token())
}

func TestRestore_InvalidCredential_DiscardsIt(t *testing.T) {
	client := &fakeClient{CurrentUserErr: common.ErrSessionInvalid}
	s, _, creds, n := newStore(client)
	require.NoError(t, creds.SetCredential(context.Background(), "bad-tok"))

	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, Anonymous, s.State())
	require.Empty(t, creds.value, "credential must be discarded")
	require.Empty(t, client.Token())
	require.Contains(t, n.titles(), "warn: Session Expired")
}

func TestRestore_NetworkFailure_KeepsStoredCredential(t *testing.T) {
	client := &fakeClient{CurrentUserErr: common.ErrNetworkFailure}
	s, _, creds, _ := newStore(client)
	require.NoError(t, creds.SetCredential(context.Background(), "tok"))

	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, Anonymous, s.State())
	require.Equal(t, "tok", creds.value, "credential survives a transient failure")
	require.Empty(t, client.Token(), "no in-memory credential without a validated user")
}

func TestRestore_ExpiredJWT_DiscardedWithoutNetworkCall(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	client := &fakeClient{CurrentUserErr: common.ErrNetworkFailure}
	s, _, creds, _ := newStore(client)
	require.NoError(t, creds.SetCredential(context.Background(), tok))

	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, Anonymous, s.State())
	require.Empty(t, creds.value)
}

func TestRestore_Idempotent(t *testing.T) {
	client := &fakeClient{CurrentUserResp: dto.UserDTO{ID: "u1", Email: "a@b.c"}}
	s, _, creds, _ := newStore(client)
	require.NoError(t, creds.SetCredential(context.Background(), "tok"))

	require.NoError(t, s.Restore(context.Background()))
	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, AuthenticatedNoProfile, s.State())
}

func TestLogout_RemoteFailureStillClearsLocally(t *testing.T) {
	client := &fakeClient{LoginResp: loginResp(""), LogoutErr: common.ErrNetworkFailure}
	s, _, creds, _ := newStore(client)
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	s.Logout(context.Background())

	require.Equal(t, Anonymous, s.State())
	require.Empty(t, client.Token())
	require.Empty(t, creds.value)
}

func TestDeleteAccount_RequiresAuthentication(t *testing.T) {
	s, _, _, _ := newStore(&fakeClient{})
	err := s.DeleteAccount(context.Background())
	require.ErrorIs(t, err, common.ErrValidationFailure)
}

func TestDeleteAccount_FailureLeavesStateUnchanged(t *testing.T) {
	client := &fakeClient{LoginResp: loginResp(""), DeleteAccountErr: common.ErrNetworkFailure}
	s, _, _, _ := newStore(client)
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	err := s.DeleteAccount(context.Background())
	require.ErrorIs(t, err, common.ErrNetworkFailure)
	require.Equal(t, AuthenticatedNoProfile, s.State())
	require.Equal(t, "tok", client.Token())
}

func TestDeleteAccount_SuccessClearsEverything(t *testing.T) {
	client := &fakeClient{LoginResp: loginResp("")}
	s, _, creds, _ := newStore(client)
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	require.NoError(t, s.DeleteAccount(context.Background()))
	require.Equal(t, Anonymous, s.State())
	require.Empty(t, client.Token())
	require.Empty(t, creds.value)
}

func TestSetProfile_And_UpdateProfileID(t *testing.T) {
	client := &fakeClient{LoginResp: loginResp("")}
	s, _, _, _ := newStore(client)
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	require.Equal(t, AuthenticatedNoProfile, s.State())

	p := dto.ProfileFromDTO(dto.ProfileDTO{ID: "p9", FirstName: "A"})
	s.SetProfile(&p)
	s.UpdateProfileID("p9")

	require.Equal(t, AuthenticatedWithProfile, s.State())
	u, _ := s.User()
	require.Equal(t, "p9", u.ProfileID)

	s.SetProfile(nil)
	require.Equal(t, AuthenticatedNoProfile, s.State())
}
