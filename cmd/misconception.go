package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var misconceptionCmd = &cobra.Command{
	Use:   "misconception",
	Short: "Record or resolve observed misconceptions",
}

var misconceptionRecordCmd = &cobra.Command{
	Use:   "record <topic> <description>...",
	Short: "Record an observed misconception on a topic",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := svc.RecordMisconception(cmd.Context(), learnerID(cmd), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return printJSON(rec)
	},
}

var misconceptionResolveCmd = &cobra.Command{
	Use:   "resolve <topic> <description>...",
	Short: "Mark a misconception as resolved",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := svc.ResolveMisconception(cmd.Context(), learnerID(cmd), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return printJSON(rec)
	},
}

func init() {
	misconceptionCmd.AddCommand(misconceptionRecordCmd)
	misconceptionCmd.AddCommand(misconceptionResolveCmd)
}
