package rendering

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/research-digest/internal/types"
)

// Data is the input to every renderer strategy.
type Data struct {
	Topic       types.Topic
	Record      *types.ResearchRecord
	GeneratedAt time.Time
}

// Strategy is one way of producing the HTML body. Strategies are tried in
// order, first success wins, mirroring the extraction fence/boundary
// discipline.
type Strategy struct {
	Name   string
	Render func(Data) (string, error)
}

// defaultStrategies lists the template renderer first and the plain
// string-concatenation renderer as the fallback.
func defaultStrategies() []Strategy {
	return []Strategy{
		{Name: "template", Render: renderTemplate},
		{Name: "concat", Render: renderConcat},
	}
}

// RenderHTML renders the digest HTML body. It returns the body and the name
// of the strategy that produced it. The fallback chain means a template
// failure does not abort the run.
func RenderHTML(data Data) (string, string, error) {
	return renderWith(defaultStrategies(), data)
}

func renderWith(strategies []Strategy, data Data) (string, string, error) {
	var lastErr error
	for _, s := range strategies {
		out, err := s.Render(data)
		if err == nil {
			return out, s.Name, nil
		}
		lastErr = err
	}
	return "", "", &RenderError{
		Message: "all renderer strategies failed",
		Cause:   lastErr,
	}
}

// digestTemplate is the primary HTML template. All free-text fields pass
// through html/template's contextual escaping; link hrefs only ever receive
// the validated URL values.
var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: -apple-system, Segoe UI, Helvetica, Arial, sans-serif; color: #24292f; max-width: 720px; margin: 0 auto; padding: 16px; }
  h1 { font-size: 22px; border-bottom: 2px solid #0969da; padding-bottom: 8px; }
  h2 { font-size: 18px; margin-top: 28px; color: #0969da; }
  .meta { color: #57606a; font-size: 13px; }
  .finding { margin: 12px 0; padding: 10px 14px; border-left: 3px solid #0969da; background: #f6f8fa; }
  .badge { display: inline-block; font-size: 11px; padding: 1px 8px; border-radius: 10px; background: #ddf4ff; color: #0969da; margin-right: 6px; }
  .importance-high { background: #ffebe9; color: #cf222e; }
  pre { background: #f6f8fa; padding: 12px; overflow-x: auto; border-radius: 6px; font-size: 13px; }
  ul { padding-left: 20px; }
  .footer { margin-top: 32px; font-size: 12px; color: #57606a; border-top: 1px solid #d0d7de; padding-top: 8px; }
</style>
</head>
<body>
<h1>{{.Topic.Name}}</h1>
<p class="meta">Daily research digest &middot; {{.GeneratedAt.Format "Monday, January 2, 2006"}}</p>
<p>{{.Record.ExecutiveSummary}}</p>

<h2>Key Findings</h2>
{{range .Record.KeyFindings}}<div class="finding">
<strong>{{.Title}}</strong><br>
<span class="badge">{{.Category}}</span><span class="badge{{if eq .Importance "high"}} importance-high{{end}}">{{.Importance}}</span>{{if .Actionable}}<span class="badge">actionable</span>{{end}}
<p>{{.Description}}</p>
</div>
{{end}}

<h2>Recommended Resources</h2>
<ul>
{{range .Record.RecommendedResources}}<li><a href="{{.URL}}">{{.Name}}</a> ({{.Type}}){{if .Description}} &middot; {{.Description}}{{end}}</li>
{{end}}</ul>

<h2>Code Examples</h2>
{{range .Record.CodeExamples}}<div>
<strong>{{.Title}}</strong>{{if .Language}} <span class="badge">{{.Language}}</span>{{end}}
<pre>{{.Code}}</pre>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}

<h2>Sources</h2>
<ul>
{{range .Record.Sources}}<li><a href="{{.URL}}">{{.Title}}</a> &middot; {{.Credibility}} &middot; {{.Relevance}} relevance</li>
{{end}}</ul>

<div class="footer">Generated automatically. Reply to this address to reach the digest operator.</div>
</body>
</html>
`))

// renderTemplate is the primary, component-based renderer.
func renderTemplate(data Data) (string, error) {
	if data.Record == nil {
		return "", &TemplateError{Message: "nil research record"}
	}

	var sb strings.Builder
	if err := digestTemplate.Execute(&sb, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute digest template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}

// Subject derives the email subject line from the topic name, weekday and date.
func Subject(topic types.Topic, generatedAt time.Time) string {
	return fmt.Sprintf("%s Digest - %s, %s",
		topic.Name,
		generatedAt.Weekday(),
		generatedAt.Format("Jan 2 2006"))
}
