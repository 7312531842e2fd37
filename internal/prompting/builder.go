// Package prompting builds the research prompt sent to the model.
package prompting

import (
	"strconv"
	"strings"

	"github.com/jonathan/research-digest/internal/prompts"
	"github.com/jonathan/research-digest/internal/types"
)

const (
	// maxFocusAreas bounds how many focus areas are included in the prompt
	maxFocusAreas = 4
	// maxSearchTerms bounds how many suggested search terms are included
	maxSearchTerms = 5
)

// Builder produces research prompts for a topic. The test-mode flag is fixed
// at construction so prompt content is a pure function of the topic.
type Builder struct {
	testMode     bool
	searchBudget int
}

// NewBuilder creates a prompt builder. In test mode a minimal fixed prompt is
// produced to minimize model cost.
func NewBuilder(testMode bool, searchBudget int) *Builder {
	return &Builder{testMode: testMode, searchBudget: searchBudget}
}

// Build returns the prompt string for the given topic.
func (b *Builder) Build(topic types.Topic) string {
	if b.testMode {
		return prompts.MustGet("research.json", "test-research")
	}

	template := prompts.MustGet("research.json", "daily-research")
	return prompts.Format(template, map[string]string{
		"TopicName":        topic.Name,
		"TopicDescription": topic.Description,
		"FocusAreas":       bulletList(truncate(topic.FocusAreas, maxFocusAreas)),
		"SearchTerms":      bulletList(truncate(topic.SearchTerms, maxSearchTerms)),
		"SearchBudget":     strconv.Itoa(b.searchBudget),
	})
}

// truncate returns the first n items of list, or the whole list if shorter
func truncate(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

// bulletList formats items as a markdown bullet list
func bulletList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
