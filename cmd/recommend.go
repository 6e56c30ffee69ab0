package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/gradex/internal/metrics"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a difficulty level from recent performance",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		s, e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := e.RecommendDifficulty(context.Background(), topic)
		if err != nil {
			return err
		}

		fmt.Printf("Level:      %s %s\n", rec.Level.Emoji(), rec.Level.Label())
		fmt.Printf("Reason:     %s\n", rec.Reason)
		fmt.Printf("Confidence: %d%%\n", rec.Confidence)
		fmt.Printf("Message:    %s\n", rec.Message)
		if rec.Details.QuestionsNeeded > 0 {
			fmt.Printf("Need %d more answers for a confident recommendation.\n",
				rec.Details.QuestionsNeeded)
		}
		return nil
	},
}

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Check whether to change difficulty mid-session",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		current, _ := cmd.Flags().GetString("current")

		s, e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		adj, err := e.ShouldAdjust(context.Background(), metrics.ParseLevel(current), topic)
		if err != nil {
			return err
		}

		if adj.ShouldAdjust {
			fmt.Printf("Adjust: %s → %s %s\n",
				adj.Current.Label(), adj.NewLevel.Emoji(), adj.NewLevel.Label())
		} else {
			fmt.Printf("Stay on %s %s\n", adj.Current.Emoji(), adj.Current.Label())
		}
		fmt.Printf("Reason:     %s\n", adj.Reason)
		fmt.Printf("Confidence: %d%%\n", adj.Confidence)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("topic", "", "Limit history to one topic (default: all topics)")
	adjustCmd.Flags().String("topic", "", "Limit history to one topic (default: all topics)")
	adjustCmd.Flags().String("current", "medium", "Current difficulty level")
}
