package cmd

import (
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess <topic>",
	Short: "Print the current assessment and recommendation for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		assessment, err := svc.GetAssessment(cmd.Context(), learnerID(cmd), args[0])
		if err != nil {
			return err
		}
		return printJSON(assessment)
	},
}
