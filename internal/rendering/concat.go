package rendering

import (
	"html"
	"strings"
)

// renderConcat is the string-concatenation fallback renderer. It produces a
// simpler document than the template renderer but honors the same contract:
// every free-text field is escaped and link hrefs only receive validated URLs.
func renderConcat(data Data) (string, error) {
	if data.Record == nil {
		return "", &RenderError{Message: "nil research record"}
	}

	rec := data.Record
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n<body>\n")
	sb.WriteString("<h1>" + html.EscapeString(data.Topic.Name) + "</h1>\n")
	sb.WriteString("<p>Daily research digest &middot; " +
		html.EscapeString(data.GeneratedAt.Format("Monday, January 2, 2006")) + "</p>\n")
	sb.WriteString("<p>" + html.EscapeString(rec.ExecutiveSummary) + "</p>\n")

	sb.WriteString("<h2>Key Findings</h2>\n<ul>\n")
	for _, f := range rec.KeyFindings {
		sb.WriteString("<li><strong>" + html.EscapeString(f.Title) + "</strong> [" +
			html.EscapeString(f.Category) + ", " + html.EscapeString(f.Importance) + "] " +
			html.EscapeString(f.Description) + "</li>\n")
	}
	sb.WriteString("</ul>\n")

	sb.WriteString("<h2>Recommended Resources</h2>\n<ul>\n")
	for _, r := range rec.RecommendedResources {
		sb.WriteString("<li><a href=\"" + html.EscapeString(r.URL) + "\">" +
			html.EscapeString(r.Name) + "</a> (" + html.EscapeString(r.Type) + ") " +
			html.EscapeString(r.Description) + "</li>\n")
	}
	sb.WriteString("</ul>\n")

	sb.WriteString("<h2>Code Examples</h2>\n")
	for _, c := range rec.CodeExamples {
		sb.WriteString("<p><strong>" + html.EscapeString(c.Title) + "</strong></p>\n")
		sb.WriteString("<pre>" + html.EscapeString(c.Code) + "</pre>\n")
	}

	sb.WriteString("<h2>Sources</h2>\n<ul>\n")
	for _, s := range rec.Sources {
		sb.WriteString("<li><a href=\"" + html.EscapeString(s.URL) + "\">" +
			html.EscapeString(s.Title) + "</a> &middot; " + html.EscapeString(s.Credibility) +
			" &middot; " + html.EscapeString(s.Relevance) + " relevance</li>\n")
	}
	sb.WriteString("</ul>\n</body>\n</html>\n")

	return sb.String(), nil
}
