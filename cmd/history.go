package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		runs, err := st.History().ListRuns(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No generation runs recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-28s  %-4s  %-4s  %s\n",
			"Timestamp", "Diff", "Model", "Qs", "Drop", "Source")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range runs {
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-8s  %-28s  %-4d  %-4d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Difficulty,
				model,
				r.QuestionCount,
				r.DroppedCount,
				r.SourcePath,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}
