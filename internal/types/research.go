// Package types provides type definitions for structured data used throughout the research-digest system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResearchRecord represents the structured result of one research run
type ResearchRecord struct {
	ExecutiveSummary     string        `json:"executiveSummary"`
	KeyFindings          []Finding     `json:"keyFindings"`
	RecommendedResources []Resource    `json:"recommendedResources"`
	CodeExamples         []CodeExample `json:"codeExamples"`
	Sources              []Source      `json:"sources"`
}

// Finding represents a single research finding
type Finding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`   // tool, framework, technique, update, trend
	Importance  string `json:"importance"` // high, medium, low
	Actionable  bool   `json:"actionable"`
}

// Resource represents a recommended resource with a validated URL
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type"` // documentation, tutorial, tool, article, video, repository
}

// CodeExample represents a runnable code snippet included in the digest
type CodeExample struct {
	Title       string `json:"title"`
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Source represents a web source cited by the model
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Credibility string `json:"credibility"` // official, community, blog, news
	Relevance   string `json:"relevance"`   // high, medium, low
}

// Allowed enum values for ResearchRecord fields. The JSON Schema under
// schemas/ is the authoritative copy; these mirror it for typed checks.
var (
	FindingCategories    = []string{"tool", "framework", "technique", "update", "trend"}
	ImportanceLevels     = []string{"high", "medium", "low"}
	ResourceTypes        = []string{"documentation", "tutorial", "tool", "article", "video", "repository"}
	SourceCredibilities  = []string{"official", "community", "blog", "news"}
	SourceRelevanceLevel = []string{"high", "medium", "low"}
)

// contains reports whether s is one of the allowed values
func contains(allowed []string, s string) bool {
	for _, v := range allowed {
		if v == s {
			return true
		}
	}
	return false
}

// ValidCategory reports whether c is an allowed finding category
func ValidCategory(c string) bool { return contains(FindingCategories, c) }

// ValidImportance reports whether i is an allowed importance level
func ValidImportance(i string) bool { return contains(ImportanceLevels, i) }

// ValidResourceType reports whether t is an allowed resource type
func ValidResourceType(t string) bool { return contains(ResourceTypes, t) }

// ValidCredibility reports whether c is an allowed source credibility
func ValidCredibility(c string) bool { return contains(SourceCredibilities, c) }

// ValidRelevance reports whether r is an allowed source relevance level
func ValidRelevance(r string) bool { return contains(SourceRelevanceLevel, r) }
