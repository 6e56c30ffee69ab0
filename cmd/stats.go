package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gradex/internal/metrics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated performance metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		s, e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		perf, err := e.Performance(context.Background(), topic)
		if err != nil {
			return err
		}

		if perf.TotalQuestions == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Questions:  %d", perf.TotalQuestions)
		if topic != "" {
			fmt.Printf("  (topic: %s)", topic)
		}
		fmt.Println()
		fmt.Printf("Overall:    %d%%\n", perf.OverallAccuracy)
		fmt.Printf("Recent:     %d%%\n", perf.RecentAccuracy)
		if perf.Streak.Count > 0 {
			fmt.Printf("Streak:     %d %s\n", perf.Streak.Count, perf.Streak.Type)
		}
		fmt.Printf("Trend:      %s\n", perf.TrendDirection)
		if perf.Activity.TodayQuestions > 0 {
			fmt.Printf("Today:      %d questions\n", perf.Activity.TodayQuestions)
		}

		fmt.Println()
		fmt.Printf("%-12s  %6s  %8s  %9s\n", "Difficulty", "Total", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 42))
		for _, level := range []metrics.Level{metrics.LevelEasy, metrics.LevelMedium, metrics.LevelHard} {
			b := perf.DifficultyBreakdown[level]
			fmt.Printf("%s %-10s  %6d  %8d  %8d%%\n",
				level.Emoji(), level.Label(), b.Total, b.Correct, b.Accuracy)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("topic", "", "Limit history to one topic (default: all topics)")
}
