package features

import "github.com/augurk/augurk/pkg/query"

var projection = query.NewProjectionMap("public", "features", "f").
	Project("id", "Id").
	Project("product", "Product").
	Project("group_name", "Group").
	Project("title", "Title").
	Project("version", "Version").
	Project("payload", "Payload").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "UpdatedAt", Descending: true}
