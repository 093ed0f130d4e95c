package cmd

import (
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start or end a practice session",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <topic>",
	Short: "Start a session on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		start, err := svc.StartSession(cmd.Context(), learnerID(cmd), args[0])
		if err != nil {
			return err
		}
		return printJSON(start)
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current session and print a summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		report, ok, err := svc.EndSession(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("No active session.")
			return nil
		}
		return printJSON(report)
	},
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionEndCmd)
}
