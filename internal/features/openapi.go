package features

import "github.com/augurk/augurk/pkg/openapi"

type apiSpec struct {
	List     *openapi.Operation
	Find     *openapi.Operation
	Metadata *openapi.Operation
	Search   *openapi.Operation
	Create   *openapi.Operation
	Update   *openapi.Operation
	Delete   *openapi.Operation
}

// Schemas defines the component schemas referenced by the feature endpoints.
var Schemas = map[string]*openapi.Schema{
	"Feature": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"id":         {Type: "string", Format: "uuid"},
			"product":    {Type: "string", Example: "webshop"},
			"group":      {Type: "string", Example: "checkout"},
			"title":      {Type: "string", Example: "Free shipping"},
			"version":    {Type: "string", Example: "1.0.0-beta.1"},
			"payload":    {Type: "object", Description: "Feature document content"},
			"created_at": {Type: "string", Format: "date-time"},
			"updated_at": {Type: "string", Format: "date-time"},
		},
		Required: []string{"id", "product", "group", "title", "payload"},
	},
	"FeatureMetadata": {
		Type:        "object",
		Description: "Metadata markers keyed by name, including last-modified, upload-date, and expires",
	},
	"FeaturePageResult": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	},
	"PageRequest": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"page":      {Type: "integer"},
			"page_size": {Type: "integer"},
			"search":    {Type: "string"},
		},
	},
	"CreateFeature": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"product": {Type: "string"},
			"group":   {Type: "string"},
			"title":   {Type: "string"},
			"version": {Type: "string", Description: "Optional product version"},
			"payload": {Type: "object"},
		},
		Required: []string{"product", "group", "title", "payload"},
	},
	"UpdateFeature": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"title":   {Type: "string"},
			"payload": {Type: "object"},
		},
		Required: []string{"title", "payload"},
	},
}

// Spec documents the feature endpoints.
var Spec = apiSpec{
	List: &openapi.Operation{
		Summary:     "List features",
		Description: "List feature documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in product, group, and title", false),
			openapi.QueryParam("product", "string", "Filter by product (exact)", false),
			openapi.QueryParam("group", "string", "Filter by group (exact)", false),
			openapi.QueryParam("version", "string", "Filter by version (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Feature page", "FeaturePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find feature",
		Description: "Find a feature document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Feature ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Feature details", "Feature"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Metadata: &openapi.Operation{
		Summary:     "Get feature metadata",
		Description: "Get the metadata markers attached to a feature document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Feature ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Metadata markers", "FeatureMetadata"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search features",
		Description: "Search feature documents with a structured page request",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Feature page", "FeaturePageResult"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Publish feature",
		Description: "Publish a feature document for a product, group, title, and version",
		RequestBody: openapi.RequestBodyJSON("CreateFeature", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Published feature", "Feature"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update feature",
		Description: "Replace the title and payload of a feature document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Feature ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateFeature", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated feature", "Feature"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete feature",
		Description: "Delete a feature document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Feature ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Feature deleted"},
		},
	},
}
