package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutord/internal/config"
	"github.com/abhisek/tutord/internal/learner"
	"github.com/abhisek/tutord/internal/logging"
	"github.com/abhisek/tutord/internal/store"
	"github.com/abhisek/tutord/internal/tutor"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tutord",
	Short: "Adaptive tutoring decision engine",
	Long: "Tutord tracks a learner's attempt history per topic and decides the " +
		"next pedagogical move: advance, remediate, revisit prerequisites, or rest.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and TUTORD_DB)")
	rootCmd.PersistentFlags().String("learner", "default", "Learner identifier")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(misconceptionCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then TUTORD_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds the tutoring service. The returned
// func closes the store.
func openService(cmd *cobra.Command) (*tutor.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	tuning := learner.Tuning{
		TrajectoryWindow:     cfg.Engine.TrajectoryWindow,
		MasteryWindow:        cfg.Engine.MasteryWindow,
		DominantErrorWindow:  cfg.Engine.DominantErrorWindow,
		BreakCooldownMinutes: cfg.Engine.BreakCooldownMinutes,
	}
	svc := tutor.New(st.Profiles(), st.Events(), tuning)
	return svc, func() { st.Close() }, nil
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	if id == "" {
		id = "default"
	}
	return id
}

// printJSON renders a command result as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
