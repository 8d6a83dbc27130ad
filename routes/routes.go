// Package routes declares the callable Pagure API endpoints and their
// input contracts. Nothing in this package performs I/O; the route
// values are consumed by an external transport, and Swagger renders
// them as a document for external documentation tooling.
package routes

import (
	"net/http"
	"net/url"

	"github.com/autarch/gopagure/models"
)

const apiBase = "/api/0"

// Param describes a single route input: a query parameter or a path
// capture.
type Param struct {
	Name     string
	In       string // "query" or "path"
	Required bool
}

// Route describes one endpoint. Template uses {name} placeholders for
// path captures.
type Route struct {
	Name     string
	ID       string
	Method   string
	Template string
	Params   []Param
}

var (
	// ListGroups lists the groups known to the server, optionally
	// filtered by a pattern.
	ListGroups = Route{
		Name:     "list groups",
		ID:       "listGroups",
		Method:   http.MethodGet,
		Template: apiBase + "/groups",
		Params:   []Param{{Name: "pattern", In: "query"}},
	}

	// ListUsers lists the users known to the server, optionally
	// filtered by a pattern.
	ListUsers = Route{
		Name:     "list users",
		ID:       "listUsers",
		Method:   http.MethodGet,
		Template: apiBase + "/users",
		Params:   []Param{{Name: "pattern", In: "query"}},
	}

	// GetUser retrieves one user's profile together with the
	// repositories they own and the ones they forked.
	GetUser = Route{
		Name:     "get user",
		ID:       "getUser",
		Method:   http.MethodGet,
		Template: apiBase + "/user/{username}",
		Params:   []Param{{Name: "username", In: "path", Required: true}},
	}
)

// All returns every route this module describes.
func All() []Route {
	return []Route{ListGroups, ListUsers, GetUser}
}

// GroupsPath returns the request path for the group listing endpoint.
func GroupsPath() string {
	return ListGroups.Template
}

// UsersPath returns the request path for the user listing endpoint.
func UsersPath() string {
	return ListUsers.Template
}

// UserPath returns the concrete request path for a single user
// lookup. The username is inserted as a raw path segment; any
// escaping is the transport's concern.
func UserPath(username models.Username) string {
	return apiBase + "/user/" + string(username)
}

// PatternQuery returns the query values carrying an optional pattern
// filter. The pattern is opaque to this module and passed through to
// the server unmodified; an empty pattern means no filter.
func PatternQuery(pattern string) url.Values {
	v := url.Values{}
	if pattern != "" {
		v.Set("pattern", pattern)
	}
	return v
}
