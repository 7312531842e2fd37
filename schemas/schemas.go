// Package schemas holds the JSON Schema definitions for structured artifacts,
// embedded at compile time.
package schemas

import (
	_ "embed"
)

//go:embed research_record.schema.json
var researchRecordSchema string

// ResearchRecord returns the JSON Schema for the research record the model
// is asked to produce.
func ResearchRecord() string {
	return researchRecordSchema
}
