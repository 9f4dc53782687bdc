package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youthtopro/swotter/internal/app"
	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/structgen"
	"github.com/youthtopro/swotter/internal/suggest"
)

// runApp builds the AI services and launches the TUI. A missing provider is
// not fatal: the wizard runs with the standard question set.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var deps app.Deps
	deps.ExportDir, _ = cmd.Flags().GetString("out")

	recorder := llm.NewUsageRecorder()
	provider, err := llm.NewProviderFromEnv(ctx, recorder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Personalized questions and hints will be unavailable.")
	} else {
		deps.Structgen = structgen.NewService(provider, structgen.DefaultConfig())
		deps.Suggest = suggest.NewService(provider, suggest.DefaultConfig())
		deps.Usage = recorder
	}

	return app.Run(deps)
}
