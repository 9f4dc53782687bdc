package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/youthtopro/swotter/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured AI provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a test request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder := llm.NewUsageRecorder()
		provider, err := llm.NewProviderFromEnv(cmd.Context(), recorder)
		if err != nil {
			return fmt.Errorf("provider not configured: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		ctx = llm.WithPurpose(ctx, "ping")

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: pong"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("test request failed: %w", err)
		}

		fmt.Printf("Model:    %s\n", resp.Model)
		fmt.Printf("Latency:  %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)

		if cost := llm.LookupCost(resp.Model); cost != nil {
			fmt.Printf("Cost:     %s\n", formatCost(cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
		fmt.Println("OK")
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
