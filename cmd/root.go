package cmd

import (
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/abhisek/mcqgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mcqgen <file>",
	Short: "Generate multiple-choice questions from a document with AI",
	Long: `mcqgen extracts the text of a PDF or plain-text document, asks an LLM
for 5 multiple-choice questions at the requested difficulty, and appends
them to a text file.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up API keys from a local .env file, if present.
		_ = gotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringP("difficulty", "d", "medium", "Question difficulty: easy, medium or hard")
	rootCmd.Flags().StringP("output", "o", "generated_mcqs.txt", "Output file for the generated questions")
	rootCmd.Flags().StringP("model", "m", "", "Model to use (overrides the provider default)")
	rootCmd.Flags().String("provider", "", "LLM provider: gemini, openai, anthropic or openrouter")
	rootCmd.PersistentFlags().String("db", "", "Path to the history database (overrides MCQGEN_DB)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the history database path using the --db flag
// first, then MCQGEN_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
