package main

import (
	"maps"

	"github.com/augurk/augurk/internal/expiration"
	"github.com/augurk/augurk/internal/features"
	"github.com/augurk/augurk/pkg/openapi"
)

func apiComponents() *openapi.Components {
	schemas := make(map[string]*openapi.Schema)
	maps.Copy(schemas, features.Schemas)
	maps.Copy(schemas, expiration.Schemas)

	return &openapi.Components{
		Schemas: schemas,
		Responses: map[string]*openapi.Response{
			"NotFound":        {Description: "Resource not found"},
			"Conflict":        {Description: "Resource already exists"},
			"PayloadTooLarge": {Description: "Payload exceeds the configured size limit"},
		},
	}
}
