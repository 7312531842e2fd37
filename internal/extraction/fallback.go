package extraction

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/research-digest/internal/types"
)

const (
	// maxFallbackResources bounds how many harvested URLs become resources
	maxFallbackResources = 3
	// maxFallbackSources bounds how many harvested URLs become sources
	maxFallbackSources = 5
)

// urlRe matches absolute http(s) URLs embedded in free text.
var urlRe = regexp.MustCompile(`https?://[^\s<>"'\)\]\}]+`)

// degradedRecord builds a minimally-populated record when the model's reply
// cannot be parsed into the expected schema. URLs are harvested from the
// entire original raw text, not just the sliced JSON candidate, to maximize
// recoverable links.
func degradedRecord(raw string) *types.ResearchRecord {
	urls := harvestURLs(raw)

	record := &types.ResearchRecord{
		ExecutiveSummary: "Automatic parsing of the research response failed. " +
			"The links below were recovered from the raw reply; manual review is needed.",
		KeyFindings: []types.Finding{
			{
				Title: "Research response could not be parsed",
				Description: "The model reply did not contain a valid structured record. " +
					"Recovered links are listed under resources and sources.",
				Category:   "update",
				Importance: "medium",
				Actionable: false,
			},
		},
		RecommendedResources: []types.Resource{},
		CodeExamples:         []types.CodeExample{},
		Sources:              []types.Source{},
	}

	for i, u := range urls {
		if i >= maxFallbackResources {
			break
		}
		record.RecommendedResources = append(record.RecommendedResources, types.Resource{
			Name:        fmt.Sprintf("Recovered link %d", i+1),
			URL:         u,
			Description: "Link recovered from an unparseable research response",
			Type:        "article",
		})
	}

	// Sources are deduplicated; resources take the URLs as found.
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if len(record.Sources) >= maxFallbackSources {
			break
		}
		if seen[u] {
			continue
		}
		seen[u] = true
		record.Sources = append(record.Sources, types.Source{
			Title:       u,
			URL:         u,
			Credibility: "community",
			Relevance:   "medium",
		})
	}

	return record
}

// harvestURLs scans text for absolute http(s) URLs in order of appearance.
func harvestURLs(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?")
		if validURL(m) {
			urls = append(urls, m)
		}
	}
	return urls
}

// validURL reports whether s parses as an absolute http(s) URL with a host.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
