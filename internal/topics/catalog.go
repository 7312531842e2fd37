// Package topics provides the static weekday-to-topic catalog for the digest.
package topics

import (
	"fmt"
	"time"

	"github.com/jonathan/research-digest/internal/types"
)

// catalog maps ISO weekday numbers (1=Monday .. 5=Friday) to topics.
// The table is defined at startup and never mutated.
var catalog = map[int]types.Topic{
	1: {
		ID:          "ai-engineering",
		Name:        "AI & ML Engineering",
		Description: "Applied machine learning, LLM tooling, and model deployment practices",
		FocusAreas: []string{
			"LLM application frameworks",
			"model serving and inference optimization",
			"prompt engineering and evaluation",
			"vector databases and retrieval",
			"fine-tuning and adapters",
		},
		SearchTerms: []string{
			"LLM tooling release",
			"model inference optimization",
			"RAG pipeline best practices",
			"open source ML framework update",
			"AI agent orchestration",
			"prompt evaluation tools",
		},
		Weekday: 1,
	},
	2: {
		ID:          "web-platform",
		Name:        "Web Platform & Frontend",
		Description: "Browser APIs, frontend frameworks, and web performance",
		FocusAreas: []string{
			"frontend framework releases",
			"browser platform features",
			"web performance techniques",
			"build tooling",
			"accessibility",
		},
		SearchTerms: []string{
			"frontend framework release",
			"browser API update",
			"web performance optimization",
			"JavaScript build tool",
			"CSS new features",
		},
		Weekday: 2,
	},
	3: {
		ID:          "cloud-infra",
		Name:        "Cloud & Infrastructure",
		Description: "Kubernetes, observability, and platform engineering",
		FocusAreas: []string{
			"Kubernetes ecosystem",
			"infrastructure as code",
			"observability tooling",
			"serverless platforms",
			"cost optimization",
		},
		SearchTerms: []string{
			"Kubernetes release notes",
			"Terraform OpenTofu update",
			"OpenTelemetry news",
			"platform engineering trends",
			"cloud cost tooling",
		},
		Weekday: 3,
	},
	4: {
		ID:          "languages-runtimes",
		Name:        "Languages & Runtimes",
		Description: "Programming language releases, runtimes, and developer tooling",
		FocusAreas: []string{
			"language release notes",
			"compiler and runtime improvements",
			"standard library changes",
			"developer tooling",
			"package ecosystems",
		},
		SearchTerms: []string{
			"Go release",
			"Rust release",
			"Python performance",
			"TypeScript update",
			"language server tooling",
		},
		Weekday: 4,
	},
	5: {
		ID:          "security",
		Name:        "Security Engineering",
		Description: "Vulnerabilities, supply chain security, and secure development practices",
		FocusAreas: []string{
			"notable CVEs and advisories",
			"supply chain security",
			"secrets management",
			"dependency scanning",
			"secure defaults",
		},
		SearchTerms: []string{
			"critical CVE advisory",
			"supply chain attack",
			"SBOM tooling",
			"dependency vulnerability scanner",
			"security best practices update",
		},
		Weekday: 5,
	},
}

// ForWeekday returns the topic scheduled for an ISO weekday number (1-5).
func ForWeekday(weekday int) (types.Topic, error) {
	topic, ok := catalog[weekday]
	if !ok {
		return types.Topic{}, fmt.Errorf("no topic scheduled for weekday %d (expected 1-5)", weekday)
	}
	return topic, nil
}

// ForDate returns the topic scheduled for the given date.
// Saturday and Sunday have no scheduled topic.
func ForDate(t time.Time) (types.Topic, error) {
	wd := int(t.Weekday()) // Sunday=0 .. Saturday=6
	if wd == 0 || wd == 6 {
		return types.Topic{}, fmt.Errorf("no topic scheduled for %s", t.Weekday())
	}
	return ForWeekday(wd)
}

// ByID returns the topic with the given identifier.
func ByID(id string) (types.Topic, error) {
	for _, topic := range catalog {
		if topic.ID == id {
			return topic, nil
		}
	}
	return types.Topic{}, fmt.Errorf("unknown topic id %q", id)
}

// All returns every topic in weekday order.
func All() []types.Topic {
	out := make([]types.Topic, 0, len(catalog))
	for wd := 1; wd <= 5; wd++ {
		if topic, ok := catalog[wd]; ok {
			out = append(out, topic)
		}
	}
	return out
}
