package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_ScenarioNoJSONTwoURLs(t *testing.T) {
	raw := "no json here, see https://example.com/doc and https://example.com/tool"
	record, degraded := FromText(raw)

	require.NotNil(t, record)
	assert.True(t, degraded)

	require.Len(t, record.KeyFindings, 1)
	finding := record.KeyFindings[0]
	assert.Equal(t, "update", finding.Category)
	assert.Equal(t, "medium", finding.Importance)
	assert.False(t, finding.Actionable)

	require.Len(t, record.Sources, 2)
	assert.Equal(t, "https://example.com/doc", record.Sources[0].URL)
	assert.Equal(t, "https://example.com/tool", record.Sources[1].URL)
	for _, s := range record.Sources {
		assert.Equal(t, "community", s.Credibility)
		assert.Equal(t, "medium", s.Relevance)
	}

	assert.Len(t, record.RecommendedResources, 2)
	assert.Empty(t, record.CodeExamples)
}

func TestDegradedRecord_ResourceAndSourceCaps(t *testing.T) {
	raw := "links: https://a.example.com https://b.example.com https://c.example.com " +
		"https://d.example.com https://e.example.com https://f.example.com https://g.example.com"

	record := degradedRecord(raw)
	assert.Len(t, record.RecommendedResources, 3)
	assert.Len(t, record.Sources, 5)
	assert.Equal(t, "https://a.example.com", record.RecommendedResources[0].URL)
	assert.Equal(t, "article", record.RecommendedResources[0].Type)
}

func TestDegradedRecord_SourcesDeduplicated(t *testing.T) {
	raw := "see https://example.com/x then https://example.com/x again and https://example.com/y"

	record := degradedRecord(raw)
	require.Len(t, record.Sources, 2)
	assert.Equal(t, "https://example.com/x", record.Sources[0].URL)
	assert.Equal(t, "https://example.com/y", record.Sources[1].URL)

	// Resources are not deduplicated against sources or each other
	require.Len(t, record.RecommendedResources, 3)
	assert.Equal(t, "https://example.com/x", record.RecommendedResources[0].URL)
	assert.Equal(t, "https://example.com/x", record.RecommendedResources[1].URL)
}

func TestDegradedRecord_NoURLs(t *testing.T) {
	record := degradedRecord("nothing useful in here")

	require.NotNil(t, record)
	assert.Len(t, record.KeyFindings, 1)
	assert.Empty(t, record.RecommendedResources)
	assert.Empty(t, record.Sources)
	assert.Empty(t, record.CodeExamples)
	assert.NotEmpty(t, record.ExecutiveSummary)
}

func TestHarvestURLs_TrimsTrailingPunctuation(t *testing.T) {
	urls := harvestURLs("read https://example.com/a. Also https://example.com/b, and (https://example.com/c)")
	assert.Equal(t, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}, urls)
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.com/doc", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"/relative/path", false},
		{"not a url", false},
		{"https://", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, validURL(tt.url), "url %q", tt.url)
	}
}
