package expiration

import "github.com/augurk/augurk/pkg/openapi"

type apiSpec struct {
	Sweep    *openapi.Operation
	Schedule *openapi.Operation
}

// Schemas defines the component schemas referenced by the expiration endpoints.
var Schemas = map[string]*openapi.Schema{
	"SweepResult": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"scanned":  {Type: "integer", Description: "Documents examined"},
			"skipped":  {Type: "integer", Description: "Documents without a version"},
			"stamped":  {Type: "integer", Description: "Documents with refreshed markers"},
			"expiring": {Type: "integer", Description: "Documents given an expiration marker"},
			"cleared":  {Type: "integer", Description: "Documents with markers removed"},
			"purged":   {Type: "integer", Description: "Expired documents deleted"},
		},
	},
	"SweepSchedule": {
		Type: "object",
		Properties: map[string]*openapi.Property{
			"scheduled": {Type: "boolean"},
			"next_run":  {Type: "string", Format: "date-time"},
		},
	},
}

// Spec documents the expiration endpoints.
var Spec = apiSpec{
	Sweep: &openapi.Operation{
		Summary:     "Run sweep",
		Description: "Apply the expiration policy to all documents and purge expired ones",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sweep result", "SweepResult"),
		},
	},
	Schedule: &openapi.Operation{
		Summary:     "Get sweep schedule",
		Description: "Report whether sweeps are scheduled and when the next one runs",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Schedule status", "SweepSchedule"),
		},
	},
}
