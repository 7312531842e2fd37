// Package extraction turns a raw model reply into a validated ResearchRecord,
// guaranteeing a usable result even when the model's output violates the
// requested contract.
package extraction

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/research-digest/internal/schemas"
	"github.com/jonathan/research-digest/internal/types"
	rootschemas "github.com/jonathan/research-digest/schemas"
)

// fencedBlockRe matches a fenced code block with an optional language tag.
var fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \t]*\r?\n?(.*?)```")

// FromReply extracts a ResearchRecord from the reply's concatenated text
// segments. The boolean reports whether the degraded fallback was used; it is
// informational only, callers that ignore it proceed safely.
func FromReply(reply *types.RawReply) (*types.ResearchRecord, bool) {
	return FromText(reply.Text())
}

// FromText extracts a ResearchRecord from raw model text. It never fails:
// when no valid record can be isolated it returns a degraded record built
// from whatever URLs the raw text contains.
//
// Ordered attempts, first success wins:
//  1. fence extraction: first fenced block whose trimmed interior begins "{"
//  2. boundary extraction: first "{" through last "}" in the full text
//  3. JSON parse plus schema validation of the chosen candidate
//  4. degraded fallback construction
func FromText(raw string) (*types.ResearchRecord, bool) {
	candidate, found := fencedJSON(raw)
	if !found || !parseable(candidate) {
		candidate, found = boundaryJSON(raw)
	}

	if found {
		if record, ok := parseRecord(candidate); ok {
			return record, false
		}
	}

	return degradedRecord(raw), true
}

// fencedJSON returns the interior of the first fenced block whose trimmed
// interior begins with "{". Multiple fenced blocks are not scored; the first
// matching one is authoritative.
func fencedJSON(raw string) (string, bool) {
	for _, match := range fencedBlockRe.FindAllStringSubmatch(raw, -1) {
		interior := strings.TrimSpace(match[1])
		if strings.HasPrefix(interior, "{") {
			return interior, true
		}
	}
	return "", false
}

// boundaryJSON slices between the first "{" and the last "}" inclusive.
// This tolerates explanatory prose the model prepended or appended despite
// instructions.
func boundaryJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// parseable reports whether text is well-formed JSON.
func parseable(text string) bool {
	return json.Valid([]byte(text))
}

// parseRecord parses and validates a candidate JSON payload. A record that
// parses but fails schema validation is discarded wholesale; there is no
// partial field recovery.
func parseRecord(candidate string) (*types.ResearchRecord, bool) {
	if err := schemas.ValidateJSONString(rootschemas.ResearchRecord(), candidate); err != nil {
		return nil, false
	}

	var record types.ResearchRecord
	if err := json.Unmarshal([]byte(candidate), &record); err != nil {
		return nil, false
	}

	if !enumsValid(&record) {
		return nil, false
	}

	dropInvalidURLs(&record)
	return &record, true
}

// enumsValid re-checks enum fields with the typed helpers. The embedded
// schema is authoritative; this guards against schema drift.
func enumsValid(record *types.ResearchRecord) bool {
	for _, f := range record.KeyFindings {
		if !types.ValidCategory(f.Category) || !types.ValidImportance(f.Importance) {
			return false
		}
	}
	for _, r := range record.RecommendedResources {
		if !types.ValidResourceType(r.Type) {
			return false
		}
	}
	for _, s := range record.Sources {
		if !types.ValidCredibility(s.Credibility) || !types.ValidRelevance(s.Relevance) {
			return false
		}
	}
	return true
}

// dropInvalidURLs removes resources and sources whose URL is not an absolute
// http(s) URL. Invalid items are dropped from their list, never fatal to the
// whole record.
func dropInvalidURLs(record *types.ResearchRecord) {
	resources := record.RecommendedResources[:0]
	for _, r := range record.RecommendedResources {
		if validURL(r.URL) {
			resources = append(resources, r)
		}
	}
	record.RecommendedResources = resources

	sources := record.Sources[:0]
	for _, s := range record.Sources {
		if validURL(s.URL) {
			sources = append(sources, s)
		}
	}
	record.Sources = sources
}
