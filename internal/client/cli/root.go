package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dpetrovs/ember/internal/client/nav"
)

// Root restores any persisted session, lands the user on the screen the
// navigation guard allows, and hands control to the REPL. It blocks until
// the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Ember (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	if a.isLoggedIn() {
		if u, ok := a.session.User(); ok {
			fmt.Printf("Welcome back, %s\n", u.Email)
		}
		a.goTo(nav.RouteHome)
	} else {
		a.route = nav.RouteAuth
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
