package rendering

import (
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every HTML element, leaving text content only.
var stripPolicy = bluemonday.StrictPolicy()

// DeriveText produces the plain-text alternative of an HTML body. The HTML is
// converted to markdown, then stripped of any residual markup so no angle
// brackets survive into the text part.
func DeriveText(htmlBody string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(htmlBody)
	if err != nil {
		return "", &RenderError{
			Message: "failed to convert HTML to text",
			Cause:   err,
		}
	}

	stripped := stripPolicy.Sanitize(markdown)
	text := html.UnescapeString(stripped)
	return strings.TrimSpace(text) + "\n", nil
}
