package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rootschemas "github.com/jonathan/research-digest/schemas"
)

const validRecord = `{
	"executiveSummary": "x",
	"keyFindings": [],
	"recommendedResources": [],
	"codeExamples": [],
	"sources": []
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(rootschemas.ResearchRecord(), validRecord)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"executiveSummary": "x"}`
	err := ValidateJSONString(rootschemas.ResearchRecord(), doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONString_EnumViolation(t *testing.T) {
	doc := `{
		"executiveSummary": "x",
		"keyFindings": [{
			"title": "t",
			"description": "d",
			"category": "update",
			"importance": "critical",
			"actionable": true
		}],
		"recommendedResources": [],
		"codeExamples": [],
		"sources": []
	}`
	err := ValidateJSONString(rootschemas.ResearchRecord(), doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	doc := `{
		"executiveSummary": 42,
		"keyFindings": [],
		"recommendedResources": [],
		"codeExamples": [],
		"sources": []
	}`
	err := ValidateJSONString(rootschemas.ResearchRecord(), doc)
	assert.Error(t, err)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12invalid`, validRecord)
	assert.Error(t, err)
}
