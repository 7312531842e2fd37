// Package pipeline provides the high-level orchestration for a digest run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/research-digest/internal/config"
	"github.com/jonathan/research-digest/internal/extraction"
	"github.com/jonathan/research-digest/internal/llm"
	"github.com/jonathan/research-digest/internal/prompting"
	"github.com/jonathan/research-digest/internal/rendering"
	"github.com/jonathan/research-digest/internal/topics"
	"github.com/jonathan/research-digest/internal/types"
)

// Deliverer sends a rendered digest message. Satisfied by delivery.Dispatcher.
type Deliverer interface {
	Send(msg *types.EmailMessage) error
}

// RunOptions holds per-invocation configuration for a digest run
type RunOptions struct {
	// Day overrides the topic weekday (1-5); zero derives it from the clock.
	Day int
	// TestEmail sends a fixed minimal message, exercising delivery only.
	TestEmail bool
	// DryRun renders the digest but skips delivery.
	DryRun bool
	// Now is swapped in tests; defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a completed (or skipped) digest run
type Result struct {
	RunID    string
	Skipped  bool
	Topic    types.Topic
	Record   *types.ResearchRecord
	Degraded bool
	Usage    types.TokenUsage
	Renderer string
	Message  *types.EmailMessage
}

// Runner wires the pipeline stages together. Collaborators are injected so
// tests can stub the model client and the dispatcher.
type Runner struct {
	cfg       *config.Config
	client    llm.Client
	deliverer Deliverer
	logger    *zap.SugaredLogger
}

// NewRunner creates a runner over the given collaborators.
func NewRunner(cfg *config.Config, client llm.Client, deliverer Deliverer, logger *zap.SugaredLogger) *Runner {
	return &Runner{cfg: cfg, client: client, deliverer: deliverer, logger: logger}
}

// Run executes one digest cycle: topic lookup, research request, extraction,
// rendering, delivery. Stages run strictly in order; the first unrecoverable
// failure aborts the run.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	runAt := now()

	result := &Result{RunID: uuid.NewString()}
	log := r.logger.With("run_id", result.RunID)

	if opts.TestEmail {
		return result, r.sendTestMessage(log, result, runAt)
	}

	if opts.Day == 0 && !r.cfg.ScheduledFor(runAt) {
		log.Infow("run not scheduled for today, skipping", "schedule", r.cfg.Schedule)
		result.Skipped = true
		return result, nil
	}

	topic, err := r.resolveTopic(opts.Day, runAt)
	if err != nil {
		return result, err
	}
	result.Topic = topic
	log = log.With("topic", topic.ID)
	log.Infow("topic selected", "name", topic.Name, "weekday", topic.Weekday)

	reqOpts := llm.DefaultRequestOptions()
	testMode := r.cfg.TestMode
	if testMode {
		reqOpts.SearchBudget = 0
	}
	prompt := prompting.NewBuilder(testMode, reqOpts.SearchBudget).Build(topic)

	log.Infow("requesting research", "search_budget", reqOpts.SearchBudget, "test_mode", testMode)
	reply, err := r.client.Research(ctx, prompt, reqOpts)
	if reply != nil {
		result.Usage = reply.Usage
		log.Infow("model usage",
			"input_tokens", reply.Usage.InputTokens,
			"output_tokens", reply.Usage.OutputTokens)
	}
	if err != nil {
		return result, fmt.Errorf("research request: %w", err)
	}

	result.Record, result.Degraded = extraction.FromReply(reply)
	if result.Degraded {
		log.Warnw("structured extraction failed, using degraded record")
	} else {
		log.Infow("record extracted",
			"findings", len(result.Record.KeyFindings),
			"resources", len(result.Record.RecommendedResources),
			"sources", len(result.Record.Sources))
	}

	msg, renderer, err := rendering.BuildMessage(topic, result.Record, r.cfg.From, r.cfg.Recipients, runAt)
	if err != nil {
		return result, fmt.Errorf("render digest: %w", err)
	}
	result.Message = msg
	result.Renderer = renderer
	log.Infow("digest rendered", "renderer", renderer, "subject", msg.Subject)

	if opts.DryRun {
		log.Infow("dry run, skipping delivery")
		return result, nil
	}

	if err := r.deliverer.Send(msg); err != nil {
		return result, fmt.Errorf("deliver digest: %w", err)
	}
	log.Infow("digest delivered", "recipients", len(msg.To))
	return result, nil
}

func (r *Runner) resolveTopic(day int, runAt time.Time) (types.Topic, error) {
	if day != 0 {
		return topics.ForWeekday(day)
	}
	return topics.ForDate(runAt)
}

// sendTestMessage delivers a fixed minimal message so operators can verify
// SMTP credentials without spending model tokens.
func (r *Runner) sendTestMessage(log *zap.SugaredLogger, result *Result, runAt time.Time) error {
	msg := &types.EmailMessage{
		From:     r.cfg.From,
		To:       r.cfg.Recipients,
		Subject:  "Research Digest - delivery test",
		HTMLBody: "<p>This is a delivery test from research-digest. No research was performed.</p>",
		TextBody: "This is a delivery test from research-digest. No research was performed.\n",
		Date:     runAt,
	}
	result.Message = msg
	log.Infow("sending test message", "recipients", len(msg.To))
	if err := r.deliverer.Send(msg); err != nil {
		return fmt.Errorf("deliver test message: %w", err)
	}
	log.Infow("test message delivered")
	return nil
}
