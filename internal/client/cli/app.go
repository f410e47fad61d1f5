package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/time/rate"

	"github.com/dpetrovs/ember/internal/client/api"
	"github.com/dpetrovs/ember/internal/client/config"
	"github.com/dpetrovs/ember/internal/client/credstore"
	"github.com/dpetrovs/ember/internal/client/device"
	"github.com/dpetrovs/ember/internal/client/discovery"
	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/nav"
	"github.com/dpetrovs/ember/internal/client/notify"
	"github.com/dpetrovs/ember/internal/client/profile"
	"github.com/dpetrovs/ember/internal/client/session"
	"github.com/dpetrovs/ember/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionService is the slice of the session store the CLI needs.
type sessionService interface {
	State() session.State
	User() (models.User, bool)
	Profile() (models.Profile, bool)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Restore(ctx context.Context) error
	Logout(ctx context.Context)
	DeleteAccount(ctx context.Context) error
}

// profileService is the slice of the profile store the CLI needs.
type profileService interface {
	Profile() (models.Profile, bool)
	Create(ctx context.Context, p models.Profile) error
	Update(ctx context.Context, p models.Profile) error
	Load(ctx context.Context, id string) error
	Delete(ctx context.Context) error
	Clear()
}

// feedService is the slice of the discovery store the CLI needs.
type feedService interface {
	Items() []models.Candidate
	Matches() []models.Match
	HasMore() bool
	Fetch(ctx context.Context, page int, reset bool) error
	LoadMore(ctx context.Context) error
	Swipe(ctx context.Context, candidateID string, isLike bool)
	Reset()
}

type App struct {
	config  *config.Config
	session sessionService
	profile profileService
	feed    feedService
	geo     device.Geolocator
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	route   nav.Route
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := credstore.Open(ctx, c.CredentialDBPath)
	if err != nil {
		logger.Error(ctx, "error opening credential store", "error", err)
		return nil, err
	}

	creds := credstore.NewSQLiteStore(db)
	notifier := notify.NewLogNotifier(logger)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)

	ss := session.New(apiClient, creds, notifier, logger)
	ps := profile.New(apiClient, ss, notifier, logger)
	limiter := rate.NewLimiter(rate.Limit(c.SwipesPerSecond), 1)
	ds := discovery.New(apiClient, notifier, logger, limiter, c.FeedPageSize)

	return &App{
		config:  c,
		session: ss,
		profile: ps,
		feed:    ds,
		geo:     device.NoGeolocator{},
		log:     logger,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		route:   nav.RouteAuth,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}

// goTo applies the navigation guard to a screen change. When the guard
// redirects, the redirect target becomes the current screen and the user is
// told why. The returned route is the screen actually landed on.
func (a *App) goTo(target nav.Route) nav.Route {
	d := nav.Decide(target, a.session.State())
	if !d.Allow {
		fmt.Printf("Redirected to %s\n", d.Redirect.Title())
		a.route = d.Redirect
		return d.Redirect
	}
	a.route = target
	return target
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.User(); ok {
		s = u.Email + " "
	}
	s = s + a.route.Title()
	return fmt.Sprintf("(%s)", s)
}
