// Package nav models the navigation surface as two regions gated on
// session state. The unauthenticated region holds the auth flow; the
// authenticated region holds the app proper. Region selection is derived
// from the session container, never set directly, so an expired session
// collapses navigation to the login screen without the caller's help.
package nav

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/store"
)

// Region is the top-level navigation region.
type Region string

const (
	RegionUnauthenticated Region = "unauthenticated"
	RegionAuthenticated   Region = "authenticated"
)

// Destination identifies a screen.
type Destination string

const (
	DestLogin          Destination = "login"
	DestRegister       Destination = "register"
	DestForgotPassword Destination = "forgot-password"

	DestListings           Destination = "listings"
	DestJobDetails         Destination = "job-details"
	DestApplicationsList   Destination = "applications-list"
	DestApplicationDetails Destination = "application-details"
	DestProfile            Destination = "profile"
	DestMessagesList       Destination = "messages-list"
	DestChat               Destination = "chat"
)

// Route is a destination plus its parameter, when the destination takes
// one (job-details, application-details, chat).
type Route struct {
	Destination Destination
	Param       string
}

type routeSpec struct {
	region    Region
	withParam bool
	// roles restricts the destination to the listed roles; empty means
	// any authenticated user.
	roles []auth.Role
}

var routes = map[Destination]routeSpec{
	DestLogin:          {region: RegionUnauthenticated},
	DestRegister:       {region: RegionUnauthenticated},
	DestForgotPassword: {region: RegionUnauthenticated},

	DestListings:           {region: RegionAuthenticated},
	DestJobDetails:         {region: RegionAuthenticated, withParam: true},
	DestApplicationsList:   {region: RegionAuthenticated, roles: []auth.Role{auth.RoleJobSeeker, auth.RoleAdmin}},
	DestApplicationDetails: {region: RegionAuthenticated, withParam: true, roles: []auth.Role{auth.RoleJobSeeker, auth.RoleAdmin}},
	DestProfile:            {region: RegionAuthenticated},
	DestMessagesList:       {region: RegionAuthenticated},
	DestChat:               {region: RegionAuthenticated, withParam: true},
}

// defaultRoute is where authenticated navigation lands absent a target.
var defaultRoute = Route{Destination: DestListings}

// loginRoute is where unauthenticated navigation lands.
var loginRoute = Route{Destination: DestLogin}

// Navigator tracks the current route and the pending deep-link target.
// Region is always re-derived from the store, so the navigator can never
// show an authenticated screen to a logged-out session.
type Navigator struct {
	st     *store.Store
	logger *slog.Logger

	mu      sync.Mutex
	current Route
	pending *Route
	detach  func()
}

// NewNavigator builds a navigator over st and subscribes it to session
// changes; call Close to detach.
func NewNavigator(st *store.Store, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Navigator{st: st, logger: logger}
	n.current = n.landing(st.GetState())
	n.detach = st.Subscribe(store.SliceSession, n.onSessionChange)
	return n
}

// Close detaches the navigator from the store.
func (n *Navigator) Close() {
	if n.detach != nil {
		n.detach()
		n.detach = nil
	}
}

// Region reports the active region, derived from session state.
func (n *Navigator) Region() Region {
	if n.st.GetState().Session.Authenticated() {
		return RegionAuthenticated
	}
	return RegionUnauthenticated
}

// Current reports the route on screen.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate moves to target. An authenticated target reached while logged
// out is remembered as the pending target and the navigator redirects to
// login; a role-gated target the user cannot see redirects to the
// default destination. The returned route is what actually landed.
func (n *Navigator) Navigate(target Route) Route {
	spec, ok := routes[target.Destination]
	if !ok {
		n.logger.Warn("unknown navigation destination", "destination", string(target.Destination))
		return n.Current()
	}

	session := n.st.GetState().Session

	n.mu.Lock()
	defer n.mu.Unlock()

	if spec.region == RegionAuthenticated && !session.Authenticated() {
		copied := target
		n.pending = &copied
		n.current = loginRoute
		return n.current
	}
	if spec.region == RegionUnauthenticated && session.Authenticated() {
		// Auth screens are gone once logged in.
		n.current = defaultRoute
		return n.current
	}
	if !roleAllowed(spec, session.User) {
		n.logger.Warn("destination not permitted for role",
			"destination", string(target.Destination),
			"role", roleOf(session.User))
		n.current = defaultRoute
		return n.current
	}

	n.current = target
	return n.current
}

// ConsumePending returns the deep-link target parked before login, if
// any, clearing it. Callers invoke this after a successful login and
// Navigate to the result.
func (n *Navigator) ConsumePending() (Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending == nil {
		return Route{}, false
	}
	target := *n.pending
	n.pending = nil
	return target, true
}

// OpenURL resolves a deep link and navigates to it in one step.
func (n *Navigator) OpenURL(raw string) (Route, error) {
	target, err := Resolve(raw)
	if err != nil {
		return n.Current(), err
	}
	return n.Navigate(target), nil
}

// onSessionChange re-derives the region. On auth loss the whole stack
// collapses to login; on login the pending target, if any, is left for
// the caller to consume.
func (n *Navigator) onSessionChange(state store.State) {
	authed := state.Session.Authenticated()

	n.mu.Lock()
	defer n.mu.Unlock()

	spec := routes[n.current.Destination]
	if !authed && spec.region == RegionAuthenticated {
		n.current = loginRoute
		return
	}
	if authed && spec.region == RegionUnauthenticated && n.pending == nil {
		n.current = defaultRoute
	}
}

// landing picks the initial route for a freshly built navigator.
func (n *Navigator) landing(state store.State) Route {
	if state.Session.Authenticated() {
		return defaultRoute
	}
	return loginRoute
}

func roleAllowed(spec routeSpec, user *auth.Profile) bool {
	if len(spec.roles) == 0 {
		return true
	}
	if user == nil {
		return false
	}
	for _, role := range spec.roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

func roleOf(user *auth.Profile) string {
	if user == nil {
		return ""
	}
	return string(user.Role)
}

// Deep-link hosts. Links arrive either on the custom scheme
// (openhire://job-details/123) or as universal links
// (https://openhire.app/job-details/123).
const (
	linkScheme    = "openhire"
	universalHost = "openhire.app"
)

// Resolve parses a deep link into a route. It accepts the custom scheme
// and universal links, and rejects anything else with a validation error.
func Resolve(raw string) (Route, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Route{}, apperrors.ValidationField("url", "malformed deep link")
	}

	var path string
	switch {
	case u.Scheme == linkScheme:
		path = strings.Trim(u.Host+u.Path, "/")
	case (u.Scheme == "https" || u.Scheme == "http") && u.Host == universalHost:
		path = strings.Trim(u.Path, "/")
	default:
		return Route{}, apperrors.ValidationField("url", "unsupported deep link scheme or host")
	}
	if path == "" {
		return defaultRoute, nil
	}

	head, param, _ := strings.Cut(path, "/")
	dest := Destination(head)
	spec, ok := routes[dest]
	if !ok {
		return Route{}, apperrors.ValidationField("url", "unknown deep link destination")
	}
	if spec.withParam && param == "" {
		return Route{}, apperrors.ValidationField("url", "deep link destination requires an id")
	}
	if !spec.withParam && param != "" {
		return Route{}, apperrors.ValidationField("url", "deep link destination takes no id")
	}

	return Route{Destination: dest, Param: param}, nil
}
