package rendering

import (
	"time"

	"github.com/jonathan/research-digest/internal/types"
)

// BuildMessage renders a complete EmailMessage for a research record. The
// returned strategy name reports which renderer produced the HTML body.
func BuildMessage(topic types.Topic, record *types.ResearchRecord, from string, to []string, generatedAt time.Time) (*types.EmailMessage, string, error) {
	htmlBody, strategy, err := RenderHTML(Data{
		Topic:       topic,
		Record:      record,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, "", err
	}

	textBody, err := DeriveText(htmlBody)
	if err != nil {
		return nil, "", err
	}

	return &types.EmailMessage{
		From:     from,
		To:       to,
		Subject:  Subject(topic, generatedAt),
		HTMLBody: htmlBody,
		TextBody: textBody,
		Date:     generatedAt,
	}, strategy, nil
}
