// Package session owns the client's belief about who is logged in and with
// what credential: the Anonymous → Authenticating → Authenticated state
// machine, the persisted credential, and the narrow contract through which
// the profile store feeds back profile changes.
package session

// State is the session's externally observable phase. It is always
// recomputed from current fields, never cached, so guard decisions made
// after asynchronous transitions (e.g. a finished restore) see fresh state.
type State int

const (
	// Anonymous: no authenticated user, no credential.
	Anonymous State = iota
	// Authenticating: a credential exchange is in flight.
	Authenticating
	// AuthenticatedNoProfile: logged in, profile not created yet.
	AuthenticatedNoProfile
	// AuthenticatedWithProfile: logged in with a loaded profile.
	AuthenticatedWithProfile
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case AuthenticatedNoProfile:
		return "authenticated-no-profile"
	case AuthenticatedWithProfile:
		return "authenticated-with-profile"
	default:
		return "unknown"
	}
}

// Authenticated reports whether the session is in either authenticated
// phase.
func (s State) Authenticated() bool {
	return s == AuthenticatedNoProfile || s == AuthenticatedWithProfile
}
