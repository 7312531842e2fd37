package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/research-digest/internal/config"
	"github.com/jonathan/research-digest/internal/llm"
	"github.com/jonathan/research-digest/internal/types"
)

const validReplyJSON = `{
  "executiveSummary": "A quiet week with one notable release.",
  "keyFindings": [
    {
      "title": "Framework 2.0 released",
      "description": "Major version with breaking changes.",
      "category": "update",
      "importance": "high",
      "actionable": true
    }
  ],
  "recommendedResources": [
    {"name": "Release notes", "url": "https://example.com/notes", "type": "documentation"}
  ],
  "codeExamples": [],
  "sources": [
    {"title": "Official blog", "url": "https://example.com/blog", "credibility": "official", "relevance": "high"}
  ]
}`

type stubClient struct {
	reply  *types.RawReply
	err    error
	prompt string
	calls  int
}

func (s *stubClient) Research(_ context.Context, prompt string, _ llm.RequestOptions) (*types.RawReply, error) {
	s.calls++
	s.prompt = prompt
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

type stubDeliverer struct {
	err   error
	sent  []*types.EmailMessage
	calls int
}

func (s *stubDeliverer) Send(msg *types.EmailMessage) error {
	s.calls++
	s.sent = append(s.sent, msg)
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		GeminiAPIKey: "test-key",
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		From:         "digest@example.com",
		Recipients:   []string{"alice@example.com", "bob@example.com"},
	}
}

func textReply(text string) *types.RawReply {
	return &types.RawReply{
		Segments: []types.ReplySegment{{Kind: "text", Text: "```json\n" + text + "\n```"}},
		Usage:    types.TokenUsage{InputTokens: 100, OutputTokens: 400},
	}
}

// wednesday returns a fixed Wednesday for deterministic topic selection.
func wednesday() time.Time {
	return time.Date(2026, 9, 2, 7, 0, 0, 0, time.UTC)
}

func TestRunDeliversDigest(t *testing.T) {
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.False(t, result.Degraded)
	assert.Equal(t, "cloud-infra", result.Topic.ID)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, types.TokenUsage{InputTokens: 100, OutputTokens: 400}, result.Usage)
	require.Equal(t, 1, deliverer.calls)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, deliverer.sent[0].To)
	assert.Contains(t, deliverer.sent[0].Subject, "Cloud & Infrastructure")
}

func TestRunDegradedStillDelivers(t *testing.T) {
	client := &stubClient{reply: &types.RawReply{
		Segments: []types.ReplySegment{{Kind: "text", Text: "no JSON here, see https://example.com/post"}},
	}}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	require.NotNil(t, result.Record)
	assert.Equal(t, 1, deliverer.calls)
}

func TestRunResearchErrorAbortsBeforeDelivery(t *testing.T) {
	client := &stubClient{err: &llm.UpstreamRequestError{Message: "rate limited", StatusCode: 429}}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	_, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.Error(t, err)

	var upstream *llm.UpstreamRequestError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, 0, deliverer.calls)
}

func TestRunRecordsUsageOnEmptyResponse(t *testing.T) {
	client := &stubClient{
		reply: &types.RawReply{Usage: types.TokenUsage{InputTokens: 80}},
		err:   &llm.EmptyResponseError{},
	}
	runner := NewRunner(testConfig(), client, &stubDeliverer{}, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.Error(t, err)
	assert.Equal(t, int32(80), result.Usage.InputTokens)
}

func TestRunDayOverride(t *testing.T) {
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	// Saturday, but the override picks Monday's topic anyway.
	saturday := func() time.Time { return time.Date(2026, 9, 5, 7, 0, 0, 0, time.UTC) }
	result, err := runner.Run(context.Background(), RunOptions{Day: 1, Now: saturday})
	require.NoError(t, err)

	assert.Equal(t, "ai-engineering", result.Topic.ID)
}

func TestRunWeekendWithoutOverrideFails(t *testing.T) {
	client := &stubClient{reply: textReply(validReplyJSON)}
	runner := NewRunner(testConfig(), client, &stubDeliverer{}, zap.NewNop().Sugar())

	saturday := func() time.Time { return time.Date(2026, 9, 5, 7, 0, 0, 0, time.UTC) }
	_, err := runner.Run(context.Background(), RunOptions{Now: saturday})
	assert.Error(t, err)
	assert.Equal(t, 0, client.calls)
}

func TestRunScheduleGateSkips(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule = []string{"mon", "fri"}
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{}
	runner := NewRunner(cfg, client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Equal(t, 0, client.calls)
	assert.Equal(t, 0, deliverer.calls)
}

func TestRunDayOverrideBypassesSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule = []string{"mon"}
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{}
	runner := NewRunner(cfg, client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{Day: 3, Now: wednesday})
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, 1, deliverer.calls)
}

func TestRunDryRunSkipsDelivery(t *testing.T) {
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{DryRun: true, Now: wednesday})
	require.NoError(t, err)

	assert.Equal(t, 0, deliverer.calls)
	require.NotNil(t, result.Message)
	assert.NotEmpty(t, result.Message.HTMLBody)
}

func TestRunTestEmailSkipsResearch(t *testing.T) {
	client := &stubClient{}
	deliverer := &stubDeliverer{}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	result, err := runner.Run(context.Background(), RunOptions{TestEmail: true, Now: wednesday})
	require.NoError(t, err)

	assert.Equal(t, 0, client.calls)
	require.Equal(t, 1, deliverer.calls)
	assert.Contains(t, deliverer.sent[0].Subject, "delivery test")
	assert.Equal(t, result.Message, deliverer.sent[0])
}

func TestRunDeliveryErrorPropagates(t *testing.T) {
	client := &stubClient{reply: textReply(validReplyJSON)}
	deliverer := &stubDeliverer{err: errors.New("connection refused")}
	runner := NewRunner(testConfig(), client, deliverer, zap.NewNop().Sugar())

	_, err := runner.Run(context.Background(), RunOptions{Now: wednesday})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliver digest")
}
