package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/research-digest/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTopic outputs a human-readable summary of the selected topic.
func (p *Printer) PrintTopic(topic types.Topic) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic:   %s\n", topic.Name))
	sb.WriteString(fmt.Sprintf("Weekday: %d\n", topic.Weekday))
	sb.WriteString("Focus areas:\n")
	for i, area := range topic.FocusAreas {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(topic.FocusAreas)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", area))
	}
	p.printBox("Selected Topic", strings.TrimRight(sb.String(), "\n"))
}

// PrintResearchRecord outputs a human-readable summary of the extracted record.
func (p *Printer) PrintResearchRecord(record *types.ResearchRecord, degraded bool) {
	if record == nil {
		return
	}

	var sb strings.Builder
	if degraded {
		sb.WriteString("MODE: degraded fallback (parsing failed)\n\n")
	}
	sb.WriteString(fmt.Sprintf("Summary: %s\n\n", record.ExecutiveSummary))
	sb.WriteString(fmt.Sprintf("Findings (%d):\n", len(record.KeyFindings)))
	for i, f := range record.KeyFindings {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.KeyFindings)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - [%s/%s] %s\n", f.Category, f.Importance, f.Title))
	}
	sb.WriteString(fmt.Sprintf("Resources: %d  Code examples: %d  Sources: %d",
		len(record.RecommendedResources), len(record.CodeExamples), len(record.Sources)))

	p.printBox("Research Record", sb.String())
}

// PrintUsage outputs the token-usage counters for cost observability.
func (p *Printer) PrintUsage(usage types.TokenUsage) {
	content := fmt.Sprintf("Input tokens:  %d\nOutput tokens: %d",
		usage.InputTokens, usage.OutputTokens)
	p.printBox("Token Usage", content)
}
