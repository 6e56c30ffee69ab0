package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/gradex/internal/engine"
	"github.com/abhisek/gradex/internal/metrics"
	"github.com/abhisek/gradex/internal/oracle"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <answer> <reference>",
	Short: "Grade one answer and append it to the attempt log",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		subtopic, _ := cmd.Flags().GetString("subtopic")
		level, _ := cmd.Flags().GetString("difficulty")
		expr, _ := cmd.Flags().GetString("expr")
		verify, _ := cmd.Flags().GetBool("verify")

		hint, err := parseHint(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		var opts []engine.Option
		if verify {
			cfg := oracle.ConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}
			o, err := oracle.New(ctx, cfg, s.EventRepo())
			if err != nil {
				return fmt.Errorf("set up oracle: %w", err)
			}
			opts = append(opts, engine.WithOracle(o))
		}

		e := engine.New(engine.DefaultConfig(), s.AttemptRepo(), opts...)
		res, err := e.GradeAttempt(ctx, engine.GradeRequest{
			Topic:              topic,
			Subtopic:           subtopic,
			Difficulty:         metrics.ParseLevel(level),
			LearnerAnswer:      args[0],
			ReferenceAnswer:    args[1],
			Hint:               hint,
			QuestionExpression: expr,
		})
		if err != nil {
			return err
		}

		verdict := "incorrect"
		if res.Correct {
			verdict = "correct"
		}
		fmt.Printf("Attempt:    %s\n", res.AttemptID)
		fmt.Printf("Verdict:    %s\n", verdict)
		fmt.Printf("Method:     %s\n", res.Method)
		fmt.Printf("Similarity: %d\n", res.Similarity)
		if res.OracleChecked {
			fmt.Printf("Oracle:     %s\n", res.OracleResult)
		}
		if res.Message != "" {
			fmt.Printf("Message:    %s\n", res.Message)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().String("topic", "", "Curriculum topic (required)")
	recordCmd.Flags().String("subtopic", "", "Finer-grained topic")
	recordCmd.Flags().String("difficulty", "medium", "Question difficulty (easy, medium, hard)")
	recordCmd.Flags().String("hint", "", "Operation that produced the reference (factor, derive, integrate)")
	recordCmd.Flags().String("expr", "", "Question expression, enables oracle cross-check with --verify")
	recordCmd.Flags().Bool("verify", false, "Cross-check derivative/integral answers with the oracle")
	if err := recordCmd.MarkFlagRequired("topic"); err != nil {
		fmt.Fprintln(os.Stderr, "record: mark topic required:", err)
	}
}
