package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/research-digest/internal/topics"
)

var topicsCommand = &cobra.Command{
	Use:   "topics",
	Short: "List the weekday topic catalog",
	RunE:  listTopicsCmd,
}

func init() {
	rootCmd.AddCommand(topicsCommand)
}

var weekdayNames = [...]string{1: "Monday", 2: "Tuesday", 3: "Wednesday", 4: "Thursday", 5: "Friday"}

func listTopicsCmd(cmd *cobra.Command, _ []string) error {
	for _, topic := range topics.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-24s %s\n", weekdayNames[topic.Weekday], topic.ID, topic.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s focus: %s\n", "", strings.Join(topic.FocusAreas, ", "))
	}
	return nil
}
