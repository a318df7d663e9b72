package features

import (
	"net/url"

	"github.com/augurk/augurk/pkg/query"
)

// Filters contains optional criteria for filtering feature queries.
type Filters struct {
	Product *string
	Group   *string
	Version *string
}

// FiltersFromQuery extracts feature filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if p := values.Get("product"); p != "" {
		f.Product = &p
	}

	if g := values.Get("group"); g != "" {
		f.Group = &g
	}

	if v := values.Get("version"); v != "" {
		f.Version = &v
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Product != nil {
		b.WhereEquals("Product", *f.Product)
	}
	if f.Group != nil {
		b.WhereEquals("Group", *f.Group)
	}
	return b.WhereContains("Version", f.Version)
}
