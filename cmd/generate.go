package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/app"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/store"
)

// runGenerate builds the dependencies and runs the pipeline for one
// input file.
func runGenerate(cmd *cobra.Command, inputPath string) error {
	ctx := cmd.Context()

	difficultyFlag, _ := cmd.Flags().GetString("difficulty")
	difficulty, err := mcq.ParseDifficulty(difficultyFlag)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	modelFlag, _ := cmd.Flags().GetString("model")
	providerFlag, _ := cmd.Flags().GetString("provider")

	// History is best-effort: a broken database disables recording but
	// never blocks generation.
	var history store.HistoryRepo
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if st, err := store.Open(dbPath); err == nil {
			defer st.Close()
			history = st.History()
		} else {
			fmt.Fprintln(os.Stderr, "warning: history disabled:", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "warning: history disabled:", err)
	}

	cfg, err := llm.ResolveConfig()
	if err != nil {
		return err
	}
	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	cfg.SetModel(modelFlag)

	provider, err := llm.NewProvider(ctx, cfg, history)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Generating %s questions from %s with %s...\n",
		difficulty, inputPath, provider.ModelID())

	res, err := app.Run(ctx, app.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Difficulty: difficulty,
		Provider:   provider,
		GenConfig:  mcq.DefaultConfig(),
		Timeout:    cfg.Timeout,
		History:    history,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d questions to %s", res.Questions, res.OutputPath)
	if res.Dropped > 0 {
		fmt.Printf(" (%d invalid records dropped)", res.Dropped)
	}
	fmt.Println()
	return nil
}
