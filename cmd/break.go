package cmd

import (
	"github.com/spf13/cobra"
)

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Check for or record a break",
}

var breakCheckCmd = &cobra.Command{
	Use:   "check <topic>",
	Short: "Check whether the learner should take a break",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		check, err := svc.CheckBreak(cmd.Context(), learnerID(cmd), args[0])
		if err != nil {
			return err
		}
		return printJSON(check)
	},
}

var breakTakenCmd = &cobra.Command{
	Use:   "taken <topic>",
	Short: "Record that the learner took a break",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		total, err := svc.RecordBreak(cmd.Context(), learnerID(cmd), args[0])
		if err != nil {
			return err
		}
		return printJSON(map[string]int{"breaks_taken": total})
	},
}

func init() {
	breakCmd.AddCommand(breakCheckCmd)
	breakCmd.AddCommand(breakTakenCmd)
}
