// Package routes provides declarative route registration for HTTP handlers.
// Handlers describe their endpoints as groups; the server mounts groups onto
// a multiplexer under a base path and collects their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/augurk/augurk/pkg/openapi"
)

// Route represents a single HTTP endpoint.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Mount registers the group's routes on the multiplexer under the given base path.
func (g Group) Mount(mux *http.ServeMux, base string) {
	prefix := base + g.Prefix

	for _, route := range g.Routes {
		pattern := route.Method + " " + prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}

	for _, child := range g.Children {
		child.Mount(mux, prefix)
	}
}

// Register mounts the groups under the base path and records their operations
// in the specification. A nil spec mounts without documenting.
func Register(mux *http.ServeMux, base string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.Mount(mux, base)
		if spec != nil {
			group.document(spec, base)
		}
	}
}

func (g Group) document(spec *openapi.Spec, base string) {
	prefix := base + g.Prefix

	for _, route := range g.Routes {
		spec.AddOperation(route.Method, prefix+route.Pattern, route.OpenAPI, g.Tags)
	}

	for _, child := range g.Children {
		child.document(spec, prefix)
	}
}
