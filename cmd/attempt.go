package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tutord/internal/tutor"
)

var (
	attemptQuestionID    string
	attemptAnswer        string
	attemptCorrectAns    string
	attemptCorrect       bool
	attemptErrorCategory string
	attemptErrorStep     string
	attemptBloomLevel    string
)

var attemptCmd = &cobra.Command{
	Use:   "attempt <topic>",
	Short: "Record a graded attempt on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		in := tutor.AttemptInput{
			QuestionID:    attemptQuestionID,
			LearnerAnswer: attemptAnswer,
			CorrectAnswer: attemptCorrectAns,
			Correct:       attemptCorrect,
			ErrorCategory: attemptErrorCategory,
			ErrorStep:     attemptErrorStep,
			BloomLevel:    attemptBloomLevel,
		}
		out, err := svc.RecordAttempt(cmd.Context(), learnerID(cmd), args[0], in)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	attemptCmd.Flags().StringVar(&attemptQuestionID, "question", "", "Question identifier")
	attemptCmd.Flags().StringVar(&attemptAnswer, "answer", "", "Learner's answer")
	attemptCmd.Flags().StringVar(&attemptCorrectAns, "expected", "", "Correct answer")
	attemptCmd.Flags().BoolVar(&attemptCorrect, "correct", false, "Whether the answer was correct")
	attemptCmd.Flags().StringVar(&attemptErrorCategory, "error-type", "", "Error category (conceptual, structural, computational)")
	attemptCmd.Flags().StringVar(&attemptErrorStep, "error-step", "", "Step where the error occurred")
	attemptCmd.Flags().StringVar(&attemptBloomLevel, "bloom", "", "Bloom level of the question")
}
