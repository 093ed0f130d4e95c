package cmd

import (
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage the learner's topic list",
}

var topicsAddCmd = &cobra.Command{
	Use:   "add <topic>...",
	Short: "Add one or more topics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		added, err := svc.AddTopics(cmd.Context(), learnerID(cmd), args)
		if err != nil {
			return err
		}
		return printJSON(added)
	},
}

var topicsDeleteCmd = &cobra.Command{
	Use:   "delete <topic>",
	Short: "Delete a topic and its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		remaining, err := svc.DeleteTopic(cmd.Context(), learnerID(cmd), args[0])
		if err != nil {
			return err
		}
		return printJSON(map[string][]string{"remaining_topics": remaining})
	},
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked topics with mastery and trajectory",
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
		type row struct {
			Topic      string  `json:"topic"`
			Mastery    float64 `json:"mastery_level"`
			Trajectory string  `json:"trajectory"`
		}
		rows := make([]row, 0, len(view.Profile.Topics))
		for _, name := range view.Profile.TopicNames() {
			ts := view.Profile.Topics[name]
			rows = append(rows, row{Topic: name, Mastery: ts.Mastery, Trajectory: string(ts.Trajectory)})
		}
		return printJSON(rows)
	},
}

func init() {
	topicsCmd.AddCommand(topicsAddCmd)
	topicsCmd.AddCommand(topicsDeleteCmd)
	topicsCmd.AddCommand(topicsListCmd)
}
