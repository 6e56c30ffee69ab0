package cmd

import (
	"fmt"

	"github.com/abhisek/gradex/internal/engine"
	"github.com/abhisek/gradex/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradex",
	Short: "Answer grading and adaptive difficulty for math practice",
	Long: "Gradex grades free-text math answers tolerantly (equivalent notations, " +
		"partial credit) and recommends the next question difficulty from recent performance.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADEX_DB env var)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRADEX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database behind the --db flag.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openEngine opens the store and wraps it in an engine.
func openEngine(cmd *cobra.Command, opts ...engine.Option) (*store.Store, *engine.Engine, error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	return s, engine.New(engine.DefaultConfig(), s.AttemptRepo(), opts...), nil
}
