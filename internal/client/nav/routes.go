// Package nav defines the client's named routes and the pure navigation
// guard deciding which screen a session may be on.
package nav

// Route is a named destination in the client.
type Route string

const (
	RouteHome     Route = "home"
	RouteProfile  Route = "profile"
	RouteMatches  Route = "matches"
	RouteChat     Route = "chat"
	RouteSettings Route = "settings"
	RouteAuth     Route = "auth"
)

// requiresAuth is the route metadata table. Every route except the auth
// entry screen requires an authenticated session.
var requiresAuth = map[Route]bool{
	RouteHome:     true,
	RouteProfile:  true,
	RouteMatches:  true,
	RouteChat:     true,
	RouteSettings: true,
	RouteAuth:     false,
}

// RequiresAuth reports whether the route needs an authenticated session.
// Unknown routes are treated as protected.
func (r Route) RequiresAuth() bool {
	ra, ok := requiresAuth[r]
	if !ok {
		return true
	}
	return ra
}

// Title is the human-readable screen title.
func (r Route) Title() string {
	switch r {
	case RouteHome:
		return "Discover"
	case RouteProfile:
		return "Profile"
	case RouteMatches:
		return "Matches"
	case RouteChat:
		return "Chat"
	case RouteSettings:
		return "Settings"
	case RouteAuth:
		return "Login"
	default:
		return string(r)
	}
}
