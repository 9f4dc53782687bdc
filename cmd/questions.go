package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/structgen"
	"github.com/youthtopro/swotter/internal/swot"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [career goal]",
	Short: "Print the question set for a career goal",
	Long:  "Prints the SWOT question set that the wizard would use. With a career goal and a configured AI provider, the questions are generated for that goal; otherwise the standard set is printed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		static, _ := cmd.Flags().GetBool("static")
		goal := strings.TrimSpace(strings.Join(args, " "))

		var structure swot.Structure
		if !static && goal != "" {
			recorder := llm.NewUsageRecorder()
			provider, err := llm.NewProviderFromEnv(cmd.Context(), recorder)
			if err != nil {
				return fmt.Errorf("provider not configured (use --static for the standard set): %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			gen := structgen.NewService(provider, structgen.DefaultConfig())
			structure, err = gen.Generate(ctx, goal)
			if err != nil {
				return fmt.Errorf("generate questions: %w", err)
			}

			fmt.Printf("Questions for: %s\n\n", goal)
		}

		for _, c := range swot.Categories() {
			fmt.Println(strings.ToUpper(c.Title()))
			fmt.Println(strings.Repeat("─", 60))
			for i, item := range swot.QuestionsFor(c, structure) {
				fmt.Printf("%d. %s\n", i+1, item.Question)
				if item.SampleAnswer != "" {
					fmt.Printf("   e.g. %s\n", item.SampleAnswer)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("static", false, "Print the standard question set without calling the AI provider")
}
