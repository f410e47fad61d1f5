package cli

import (
	"context"
	"testing"

	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/nav"
	"github.com/dpetrovs/ember/internal/client/session"
	"github.com/stretchr/testify/require"
)

func stubTerminalWidth(t *testing.T, width int) {
	t.Helper()
	orig := terminalWidth
	terminalWidth = func() (int, error) { return width, nil }
	t.Cleanup(func() { terminalWidth = orig })
}

func candidates(ids ...string) []models.Candidate {
	out := make([]models.Candidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Candidate{ID: id, FirstName: "C" + id, Age: 30})
	}
	return out
}

func TestShowFeed_FetchesFirstPageOnce(t *testing.T) {
	stubTerminalWidth(t, 100)
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{}
	a := newTestApp(ss, &fakeProfile{}, fs, "")

	require.NoError(t, a.ShowFeed(context.Background()))
	require.Equal(t, []string{"fetch"}, fs.calls)
	require.Equal(t, nav.RouteHome, a.route)
}

func TestShowFeed_ReusesLoadedQueue(t *testing.T) {
	stubTerminalWidth(t, 100)
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{items: candidates("1", "2")}
	a := newTestApp(ss, &fakeProfile{}, fs, "")

	require.NoError(t, a.ShowFeed(context.Background()))
	require.Empty(t, fs.calls)
}

func TestShowFeed_AnonymousRedirectsWithoutFetching(t *testing.T) {
	ss := &fakeSession{state: session.Anonymous}
	fs := &fakeFeed{}
	a := newTestApp(ss, &fakeProfile{}, fs, "")

	require.NoError(t, a.ShowFeed(context.Background()))
	require.Empty(t, fs.calls)
	require.Equal(t, nav.RouteAuth, a.route)
}

func TestLike_SwipesTopCandidate(t *testing.T) {
	stubTerminalWidth(t, 100)
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{items: candidates("1", "2")}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteHome

	require.NoError(t, a.Like(context.Background()))
	require.Equal(t, []string{"1"}, fs.swiped)
	require.Equal(t, []bool{true}, fs.likes)
}

func TestPass_SwipesTopCandidate(t *testing.T) {
	stubTerminalWidth(t, 100)
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{items: candidates("1")}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteHome

	require.NoError(t, a.Pass(context.Background()))
	require.Equal(t, []string{"1"}, fs.swiped)
	require.Equal(t, []bool{false}, fs.likes)
}

func TestLike_OutsideFeedDoesNothing(t *testing.T) {
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{items: candidates("1")}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteSettings

	require.NoError(t, a.Like(context.Background()))
	require.Empty(t, fs.swiped)
}

func TestLike_EmptyQueueDoesNothing(t *testing.T) {
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteHome

	require.NoError(t, a.Like(context.Background()))
	require.Empty(t, fs.swiped)
}

func TestMore_LoadsNextPage(t *testing.T) {
	stubTerminalWidth(t, 100)
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{items: candidates("1"), hasMore: true}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteHome

	require.NoError(t, a.More(context.Background()))
	require.Equal(t, []string{"more"}, fs.calls)
}

func TestMore_ExhaustedFeed(t *testing.T) {
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{hasMore: false}
	a := newTestApp(ss, &fakeProfile{}, fs, "")
	a.route = nav.RouteHome

	require.NoError(t, a.More(context.Background()))
	require.Empty(t, fs.calls)
}

func TestShowMatches_ListsMatches(t *testing.T) {
	ss := &fakeSession{state: session.AuthenticatedWithProfile}
	fs := &fakeFeed{matches: []models.Match{{ID: "m1", CandidateID: "c1"}}}
	a := newTestApp(ss, &fakeProfile{}, fs, "")

	require.NoError(t, a.ShowMatches(context.Background()))
	require.Equal(t, nav.RouteMatches, a.route)
}
