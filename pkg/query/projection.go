// Package query provides SQL query construction utilities with view-to-column
// projection mapping and automatic parameter numbering.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap translates view field names to aliased database columns for a table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	order   []string
	columns map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project registers a column under a view field name and returns the map for chaining.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	if _, exists := p.columns[viewName]; !exists {
		p.order = append(p.order, viewName)
	}
	p.columns[viewName] = column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the fully qualified, aliased table reference.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the aliased column for a view field name.
// Unknown field names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	col, ok := p.columns[viewName]
	if !ok {
		return viewName
	}
	return fmt.Sprintf("%s.%s", p.alias, col)
}

// Columns returns all projected columns as a comma-separated list in registration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns all projected columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, 0, len(p.order))
	for _, viewName := range p.order {
		list = append(list, p.Column(viewName))
	}
	return list
}
