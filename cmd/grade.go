package cmd

import (
	"fmt"

	"github.com/abhisek/gradex/internal/compare"
	"github.com/abhisek/gradex/internal/engine"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <answer> <reference>",
	Short: "Grade one answer against a reference (no database)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hint, err := parseHint(cmd)
		if err != nil {
			return err
		}

		e := engine.New(engine.DefaultConfig(), nil)
		res, err := e.AnalyzeProgress(args[0], args[1], hint)
		if err != nil {
			return err
		}

		verdict := "incorrect"
		if res.IsCorrect {
			verdict = "correct"
		} else if res.IsPartial {
			verdict = "partial"
		}

		fmt.Printf("Verdict:    %s\n", verdict)
		fmt.Printf("Method:     %s\n", res.Method)
		fmt.Printf("Similarity: %d\n", res.Similarity)
		if res.Message != "" {
			fmt.Printf("Message:    %s\n", res.Message)
		}
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <answer> <reference>",
	Short: "Classify an in-progress answer for live feedback",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hint, err := parseHint(cmd)
		if err != nil {
			return err
		}
		prev, _ := cmd.Flags().GetString("prev")

		e := engine.New(engine.DefaultConfig(), nil)
		res, err := e.AnalyzeProgress(args[0], args[1], hint)
		if err != nil {
			return err
		}

		status := res.Status
		if prev != "" {
			status = compare.MergeStatus(parseStatus(prev), status)
		}

		fmt.Printf("Status:     %s\n", status)
		fmt.Printf("Similarity: %d\n", res.Similarity)
		if res.Message != "" {
			fmt.Printf("Message:    %s\n", res.Message)
		}
		return nil
	},
}

func parseHint(cmd *cobra.Command) (compare.Hint, error) {
	h, _ := cmd.Flags().GetString("hint")
	switch compare.Hint(h) {
	case compare.HintNone, compare.HintFactor, compare.HintDerive, compare.HintIntegrate:
		return compare.Hint(h), nil
	default:
		return compare.HintNone, fmt.Errorf("unknown hint %q (want factor, derive, or integrate)", h)
	}
}

func parseStatus(s string) compare.Status {
	for st := compare.StatusEmpty; st <= compare.StatusCorrect; st++ {
		if st.String() == s {
			return st
		}
	}
	return compare.StatusEmpty
}

func init() {
	gradeCmd.Flags().String("hint", "", "Operation that produced the reference (factor, derive, integrate)")
	progressCmd.Flags().String("hint", "", "Operation that produced the reference (factor, derive, integrate)")
	progressCmd.Flags().String("prev", "", "Previous status, for monotone live feedback")
}
