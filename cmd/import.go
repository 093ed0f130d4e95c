package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a learner profile from a JSON document",
	Long: "Import validates the document against the profile schema and replaces " +
		"the stored profile for its learner_id. Reads from stdin when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read profile document: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := svc.ImportProfile(cmd.Context(), raw)
		if err != nil {
			return err
		}
		cmd.Printf("Imported profile for %s (%d topics)\n", p.LearnerID, len(p.Topics))
		return nil
	},
}
