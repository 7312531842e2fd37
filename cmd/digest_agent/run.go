package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/research-digest/internal/config"
	"github.com/jonathan/research-digest/internal/delivery"
	"github.com/jonathan/research-digest/internal/llm"
	"github.com/jonathan/research-digest/internal/observability"
	"github.com/jonathan/research-digest/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run one digest cycle end-to-end",
	Long: `Runs the full digest pipeline once: topic lookup -> research request ->
structured extraction -> HTML rendering -> SMTP delivery.

All configuration comes from environment variables (or a .env file); see the
README for the full list.`,
	RunE: runDigestCmd,
}

var (
	runDay       int
	runTestEmail bool
	runDryRun    bool
	runVerbose   bool
)

func init() {
	runCommand.Flags().IntVarP(&runDay, "day", "d", 0, "Override the topic weekday, 1 (Monday) through 5 (Friday)")
	runCommand.Flags().BoolVar(&runTestEmail, "test-email", false, "Send a fixed test message to verify SMTP settings, skipping research")
	runCommand.Flags().BoolVar(&runDryRun, "dry-run", false, "Render the digest and print it without sending email")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed run information")

	rootCmd.AddCommand(runCommand)
}

func runDigestCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if runDay != 0 && (runDay < 1 || runDay > 5) {
		return fmt.Errorf("--day must be between 1 (Monday) and 5 (Friday), got %d", runDay)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(runVerbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // flush on exit; stderr sync errors are harmless

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	dispatcher := delivery.NewDispatcher(delivery.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	})

	runner := pipeline.NewRunner(cfg, client, dispatcher, logger)
	result, err := runner.Run(ctx, pipeline.RunOptions{
		Day:       runDay,
		TestEmail: runTestEmail,
		DryRun:    runDryRun,
	})
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Println("Not scheduled for today; nothing to do.")
		return nil
	}

	if runVerbose && result.Record != nil {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintTopic(result.Topic)
		printer.PrintResearchRecord(result.Record, result.Degraded)
		printer.PrintUsage(result.Usage)
	}

	if runDryRun && result.Message != nil {
		fmt.Println(result.Message.HTMLBody)
		return nil
	}

	if result.Message != nil {
		fmt.Printf("Delivered %q to %d recipient(s).\n", result.Message.Subject, len(result.Message.To))
	}
	return nil
}
