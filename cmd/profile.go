package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the full learner profile with lifetime statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		view, err := svc.GetProfile(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}
		return printJSON(view)
	},
}
