package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/clockface/internal/database"
	"github.com/jask/clockface/internal/database/repository"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear confirmed values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenAndMigrate(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer db.Close()
		repo := repository.NewHistoryRepo(db)

		kind, _ := cmd.Flags().GetString("kind")
		if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
			n, err := repo.Clear(cmd.Context(), kind)
			if err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := repo.Recent(cmd.Context(), kind, limit)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history yet")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Kind, e.Value)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().String("kind", "", "only show time, datetime or color entries")
	historyCmd.Flags().Int("limit", 20, "how many entries to show")
	historyCmd.Flags().Bool("clear", false, "remove entries instead of listing them")
	rootCmd.AddCommand(historyCmd)
}
