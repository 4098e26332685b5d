package auth

// RouteName identifies a navigable screen.
type RouteName string

const (
	RouteLogin        RouteName = "/login"
	RouteSignup       RouteName = "/signup"
	RouteConsumerHome RouteName = "/consumer/home"
	RouteVideoDetail  RouteName = "/consumer/video"
	RouteAdminVideos  RouteName = "/admin/dashboard"
	RouteAnalytics    RouteName = "/analytics"
)

// Feature identifies a role-gated capability surfaced in the nav menu.
//
// Route metadata references these so menu visibility and route authorization
// share one allow-list instead of duplicated role literals.
type Feature string

const (
	FeatureBrowse    Feature = "browse"
	FeatureManage    Feature = "manage"
	FeatureAnalytics Feature = "analytics"
)

// featureRoles is the single source of truth for which roles may use a feature.
var featureRoles = map[Feature][]Role{
	FeatureBrowse:    {RoleConsumer},
	FeatureManage:    {RoleAdmin},
	FeatureAnalytics: {RoleAdmin, RoleManager},
}

// Route declares a screen and the feature gating it. A zero Feature means the
// route is public or requires only a session.
type Route struct {
	Name        RouteName
	Feature     Feature
	RequireAuth bool
}

// Routes is the declarative route table for the whole application.
var Routes = []Route{
	{Name: RouteLogin},
	{Name: RouteSignup},
	{Name: RouteConsumerHome, Feature: FeatureBrowse, RequireAuth: true},
	{Name: RouteVideoDetail, Feature: FeatureBrowse, RequireAuth: true},
	{Name: RouteAdminVideos, Feature: FeatureManage, RequireAuth: true},
	{Name: RouteAnalytics, Feature: FeatureAnalytics, RequireAuth: true},
}

// FeatureAllowed reports whether a role may use a feature. Used by nav menus;
// route authorization goes through [Authorize] which consults the same table.
func FeatureAllowed(f Feature, role Role) bool {
	for _, r := range featureRoles[f] {
		if r == role {
			return true
		}
	}
	return false
}

// HomeRoute returns the landing route for a role: the safe default a
// misdirected navigation falls back to.
func HomeRoute(role Role) RouteName {
	switch role {
	case RoleAdmin:
		return RouteAdminVideos
	case RoleManager:
		return RouteAnalytics
	case RoleConsumer:
		return RouteConsumerHome
	default:
		return RouteLogin
	}
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed    bool
	RedirectTo RouteName
}

func allow() Decision               { return Decision{Allowed: true} }
func redirect(r RouteName) Decision { return Decision{RedirectTo: r} }

// Authorize decides whether session may view route.
//
// A pure function of its arguments, with no I/O, so it can run synchronously
// on every navigation before anything renders. A missing session redirects to
// login; a session whose role is outside the route's allow-list redirects to
// that role's home, never the requested screen; an unknown role is treated as
// no authorization at all.
func Authorize(session *Session, route Route) Decision {
	if !route.RequireAuth && route.Feature == "" {
		return allow()
	}

	if session == nil {
		return redirect(RouteLogin)
	}

	role, err := ParseRole(string(session.Role))
	if err != nil {
		return redirect(RouteLogin)
	}

	if route.Feature == "" {
		return allow()
	}

	if !FeatureAllowed(route.Feature, role) {
		return redirect(HomeRoute(role))
	}

	return allow()
}

// Lookup finds a route by name. Unmatched names resolve to the login route,
// mirroring the catch-all redirect of the route table.
func Lookup(name RouteName) Route {
	for _, r := range Routes {
		if r.Name == name {
			return r
		}
	}
	return Route{Name: RouteLogin}
}
