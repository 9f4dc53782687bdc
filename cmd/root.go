package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swotter",
	Short: "Guided SWOT self-assessment for career mentees",
	Long:  "Swotter — a YouthToPro terminal app that guides mentees through a SWOT self-assessment with AI-personalized questions and exports the result as PDF or DOCX.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("out", "", "Directory for exported reports (default: current directory)")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
