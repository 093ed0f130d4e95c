package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery <topic> <level>",
	Short: "Manually override mastery for a topic (0.0 to 0.99)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse mastery level %q: %w", args[1], err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		applied, err := svc.UpdateTopicMastery(cmd.Context(), learnerID(cmd), args[0], level)
		if err != nil {
			return err
		}
		return printJSON(map[string]float64{"mastery_level": applied})
	},
}
