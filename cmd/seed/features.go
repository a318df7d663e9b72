package main

import (
	"encoding/json"
	"fmt"

	"github.com/augurk/augurk/internal/features"
)

func sampleFeatures() []features.CreateCommand {
	type sample struct {
		product  string
		group    string
		title    string
		version  string
		scenario string
	}

	samples := []sample{
		{"webshop", "checkout", "Apply discount code", "2.3.0", "A valid discount code reduces the order total"},
		{"webshop", "checkout", "Apply discount code", "2.4.0-beta.1", "An expired discount code is rejected with a clear message"},
		{"webshop", "catalog", "Filter products by category", "2.3.0", "Selecting a category shows only matching products"},
		{"billing", "invoicing", "Generate monthly invoice", "1.12.0", "An invoice covers all shipments in the billing period"},
		{"billing", "invoicing", "Generate monthly invoice", "1.13.0-rc.2", "Credit notes are subtracted from the invoice total"},
	}

	cmds := make([]features.CreateCommand, 0, len(samples)+1)
	for _, s := range samples {
		version := s.version
		cmds = append(cmds, features.CreateCommand{
			Product: s.product,
			Group:   s.group,
			Title:   s.title,
			Version: &version,
			Payload: featurePayload(s.title, s.scenario),
		})
	}

	// One unversioned document; the expiration policy must never touch it.
	cmds = append(cmds, features.CreateCommand{
		Product: "webshop",
		Group:   "checkout",
		Title:   "Checkout glossary",
		Payload: featurePayload("Checkout glossary", "Terms used across checkout scenarios"),
	})

	return cmds
}

func featurePayload(title, scenario string) json.RawMessage {
	payload := map[string]any{
		"title": title,
		"scenarios": []map[string]any{
			{
				"name": scenario,
				"steps": []string{
					fmt.Sprintf("Given %s", scenario),
					"When the flow completes",
					"Then the outcome is recorded",
				},
			},
		},
	}

	data, _ := json.Marshal(payload)
	return data
}
