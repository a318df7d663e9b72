package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// NewSpec creates an empty OpenAPI 3.1 specification with the given title and version.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths: make(map[string]*PathItem),
	}
}

// SetDescription sets the API description.
func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

// AddServer appends a server URL to the specification.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation records an operation under the given method and path.
// Trailing slashes are trimmed so "/features" and "/features/" document
// the same path. Operations without an explicit tag inherit defaultTags.
func (s *Spec) AddOperation(method, path string, op *Operation, defaultTags []string) {
	if op == nil {
		return
	}

	if len(op.Tags) == 0 {
		op.Tags = defaultTags
	}

	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// MarshalJSON serializes the specification as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that serves a pre-marshaled specification.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
