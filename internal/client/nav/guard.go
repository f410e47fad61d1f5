package nav

import "github.com/dpetrovs/ember/internal/client/session"

// Decision is the guard's verdict on a navigation attempt: either the
// target is allowed, or the client must go to Redirect instead.
type Decision struct {
	Allow    bool
	Redirect Route
}

func allow() Decision           { return Decision{Allow: true} }
func redirect(r Route) Decision { return Decision{Redirect: r} }

// Decide evaluates a navigation attempt against the current session state.
// It is pure and must be re-evaluated on every attempt: session state
// changes asynchronously (e.g. a restore finishing after first render), so
// a cached verdict would go stale.
//
// Rules, in order:
//  1. Protected target, unauthenticated session → the auth screen.
//  2. Auth screen while fully authenticated → home.
//  3. Auth screen while authenticated without a profile → profile creation.
//  4. Any protected target except profile/settings while authenticated
//     without a profile → profile creation.
//  5. Otherwise the target is allowed.
func Decide(target Route, s session.State) Decision {
	authenticated := s.Authenticated()

	if target.RequiresAuth() && !authenticated {
		return redirect(RouteAuth)
	}

	if target == RouteAuth && authenticated {
		if s == session.AuthenticatedNoProfile {
			return redirect(RouteProfile)
		}
		return redirect(RouteHome)
	}

	if s == session.AuthenticatedNoProfile && target.RequiresAuth() &&
		target != RouteProfile && target != RouteSettings {
		return redirect(RouteProfile)
	}

	return allow()
}
