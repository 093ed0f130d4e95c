package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the database and all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			cmd.Println("Nothing to reset:", dbPath, "does not exist.")
			return nil
		}

		if !resetForce {
			cmd.Printf("This deletes all learner data in %s. Type 'yes' to continue: ", dbPath)
			var answer string
			fmt.Fscanln(cmd.InOrStdin(), &answer)
			if answer != "yes" {
				cmd.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, if present.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
		cmd.Println("Removed", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}
