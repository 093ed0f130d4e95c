package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var graphFile string

var graphCmd = &cobra.Command{
	Use:   "graph <topic>",
	Short: "Store the prerequisite graph for a topic",
	Long: "Graph reads a JSON object mapping each subtopic to its prerequisite " +
		"list, e.g. {\"fractions\": [\"division\"]}, from --file or stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if graphFile != "" {
			raw, err = os.ReadFile(graphFile)
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read graph: %w", err)
		}

		var prereqs map[string][]string
		if err := json.Unmarshal(raw, &prereqs); err != nil {
			return fmt.Errorf("parse graph: %w", err)
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		topic, err := svc.StoreTopicGraph(cmd.Context(), learnerID(cmd), args[0], prereqs)
		if err != nil {
			return err
		}
		return printJSON(map[string]string{"topic": topic, "status": "stored"})
	},
}

func init() {
	graphCmd.Flags().StringVar(&graphFile, "file", "", "Read the graph from a JSON file instead of stdin")
}
