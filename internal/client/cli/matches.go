package cli

import (
	"context"
	"fmt"

	"github.com/dpetrovs/ember/internal/client/nav"
)

// ShowMatches opens the matches screen and lists the mutual likes
// collected during this session.
func (a *App) ShowMatches(ctx context.Context) error {
	if a.goTo(nav.RouteMatches) != nav.RouteMatches {
		return nil
	}

	matches := a.feed.Matches()
	if len(matches) == 0 {
		fmt.Println("No matches yet, keep swiping")
		return nil
	}

	for _, m := range matches {
		fmt.Printf("Match %s with %s\n", m.ID, m.CandidateID)
	}
	return nil
}

// ShowSettings opens the settings screen.
func (a *App) ShowSettings(ctx context.Context) error {
	if a.goTo(nav.RouteSettings) != nav.RouteSettings {
		return nil
	}

	fmt.Println("Server: " + a.config.ServerBaseURL)
	if u, ok := a.session.User(); ok {
		fmt.Println("Account: " + u.Email)
	}
	fmt.Println("Commands: logout, delete-account, delete-profile")
	return nil
}
