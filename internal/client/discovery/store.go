// Package discovery owns the ordered, paginated queue of not-yet-swiped
// candidates: page fetching, consume-on-swipe, refill-ahead and the
// documented first-page degraded mode.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/dpetrovs/ember/internal/client/api"
	"github.com/dpetrovs/ember/internal/client/dto"
	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/notify"
	"github.com/dpetrovs/ember/internal/logging"
)

var (
	// ErrFetchFailed marks a failed feed page load. Recoverable: the
	// caller may retry via LoadMore.
	ErrFetchFailed = errors.New("feed fetch failed")

	// ErrSwipeRecordFailed marks a failed remote swipe recording. The
	// queue has already advanced; the error is logged, never surfaced as
	// state.
	ErrSwipeRecordFailed = errors.New("swipe recording failed")
)

// refillThreshold is the queue length at or below which a swipe triggers a
// prefetch of the next page, so a single-card UI never flickers empty.
const refillThreshold = 1

// Store is the discovery queue state holder.
//
// Invariants:
//   - items keeps fetch-arrival order, stable under removal;
//   - at most one feed fetch is in flight (the loading guard);
//   - currentPage advances only on a successful non-reset fetch;
//   - a swiped candidate is removed exactly once and never re-enters.
type Store struct {
	client   api.Client
	notifier notify.Notifier
	log      logging.Logger
	limiter  *rate.Limiter
	pageSize int

	mu          sync.Mutex
	items       []models.Candidate
	matches     []models.Match
	currentPage int
	hasMore     bool
	loading     bool
	lastErr     error
	epoch       uint64
	everLoaded  bool
}

// New wires a discovery store. limiter smooths remote swipe recording and
// may be nil to record unthrottled.
func New(client api.Client, notifier notify.Notifier, log logging.Logger, limiter *rate.Limiter, pageSize int) *Store {
	return &Store{
		client:   client,
		notifier: notifier,
		log:      log.With("component", "discovery"),
		limiter:  limiter,
		pageSize: pageSize,
		hasMore:  true,
	}
}

// Items returns a copy of the queued candidates in order.
func (s *Store) Items() []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Candidate, len(s.items))
	copy(out, s.items)
	return out
}

// Matches returns a copy of the confirmed mutual matches seen so far.
func (s *Store) Matches() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Len reports the number of queued candidates.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// HasMore reports whether the server has more pages.
func (s *Store) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// CurrentPage reports the last successfully loaded page number.
func (s *Store) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded feed error, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Fetch loads one feed page. reset=true (or page 1) replaces the queue;
// otherwise the page is appended. A call while another fetch is in flight
// is silently dropped. On a first-page failure the queue falls back to the
// placeholder set so the feed screen is never empty solely due to a
// transient error.
func (s *Store) Fetch(ctx context.Context, page int, reset bool) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		s.log.Debug(ctx, "fetch dropped, another in flight", "page", page)
		return nil
	}
	s.loading = true
	s.lastErr = nil
	epoch := s.epoch
	s.mu.Unlock()

	resp, err := s.client.GetFeed(ctx, page, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if s.epoch != epoch {
		// The queue was reset while this request was outstanding; its
		// result describes a feed that no longer exists.
		s.log.Debug(ctx, "discarding stale feed response", "page", page)
		return nil
	}

	if err != nil {
		ferr := fmt.Errorf("%w: %v", ErrFetchFailed, err)
		s.lastErr = ferr
		s.log.Error(ctx, "feed fetch failed", "page", page, "error", err)
		notify.ShowError(s.notifier, "Feed Error", err.Error())

		if page == 1 && !s.everLoaded {
			// Degraded mode: a fixed, explicitly marked placeholder set.
			s.items = placeholderCandidates()
			s.hasMore = false
			s.log.Warn(ctx, "feed unavailable, using placeholder candidates")
		}
		return ferr
	}

	cands := make([]models.Candidate, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		cands = append(cands, dto.CandidateFromFeedDTO(p))
	}

	if reset || page == 1 {
		s.items = cands
		s.currentPage = 1
	} else {
		s.items = append(s.items, cands...)
		s.currentPage = page
	}
	s.hasMore = resp.HasMore
	s.everLoaded = true

	if len(cands) > 0 {
		notify.ShowFeedLoaded(s.notifier, len(cands))
	}
	s.log.Info(ctx, "feed page loaded", "page", page, "count", len(cands), "has_more", s.hasMore)
	return nil
}

// LoadMore fetches the next page in append mode. No-op when the feed is
// exhausted or a fetch is already in flight.
func (s *Store) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore || s.loading {
		s.mu.Unlock()
		return nil
	}
	next := s.currentPage + 1
	s.mu.Unlock()

	return s.Fetch(ctx, next, false)
}

// Swipe removes the candidate from the queue and records the decision
// remotely. Removal happens first and is what the UI observes; the remote
// recording is fire-and-forget and its result (a mutual-match indication)
// is advisory. Swiping an id that is not queued is a no-op, so double
// invocation is safe.
func (s *Store) Swipe(ctx context.Context, candidateID string, isLike bool) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.items {
		if c.ID == candidateID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug(ctx, "swipe on unknown candidate ignored", "candidate_id", candidateID)
		return
	}
	swiped := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	needRefill := len(s.items) <= refillThreshold && s.hasMore && !s.loading
	s.mu.Unlock()

	if isLike {
		notify.ShowLike(s.notifier, swiped.FirstName)
	}

	if needRefill {
		if err := s.LoadMore(ctx); err != nil {
			s.log.Warn(ctx, "refill-ahead fetch failed", "error", err)
		}
	}

	if swiped.Placeholder {
		// Placeholder entries exist only client-side; there is nothing to
		// record against.
		return
	}
	s.recordSwipe(ctx, swiped, isLike)
}

// recordSwipe reports the decision to the server. Failures are logged and
// swallowed: the queue has already advanced and the candidate is never
// re-inserted.
func (s *Store) recordSwipe(ctx context.Context, swiped models.Candidate, isLike bool) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			s.log.Warn(ctx, "swipe recording aborted", "candidate_id", swiped.ID, "error", err)
			return
		}
	}

	resp, err := s.client.RecordSwipe(ctx, swiped.ID, isLike)
	if err != nil {
		s.log.Warn(ctx, "swipe recording failed",
			"candidate_id", swiped.ID, "error", fmt.Errorf("%w: %v", ErrSwipeRecordFailed, err))
		return
	}

	if resp.IsMatch {
		s.mu.Lock()
		s.matches = append(s.matches, models.Match{ID: resp.MatchID, CandidateID: swiped.ID})
		s.mu.Unlock()
		notify.ShowMatch(s.notifier, swiped.FirstName)
	}
}

// Reset clears the queue and invalidates any outstanding fetch, whose late
// response will be discarded by epoch comparison. Used on logout and before
// a full reload.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.matches = nil
	s.currentPage = 0
	s.hasMore = true
	s.lastErr = nil
	s.everLoaded = false
	s.epoch++
}

// placeholderCandidates is the fixed degraded-mode set shown when the very
// first feed page cannot be loaded.
func placeholderCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID:          "placeholder-1",
			FirstName:   "Jane",
			LastName:    "Smith",
			Bio:         "Love hiking and photography",
			Age:         24,
			Gender:      "female",
			Interests:   []string{"hiking", "photography", "coffee"},
			Location:    "New York, NY",
			Placeholder: true,
		},
	}
}
