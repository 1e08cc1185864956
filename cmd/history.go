package cmd

import (
	"fmt"
	"sort"
	"strings"

	"clipscrub/pkg/config"
	"clipscrub/pkg/errors"
	"clipscrub/pkg/filter"
	"clipscrub/pkg/history"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyMatch     string
	historyMatchMode string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the audit log",
	Long:  `List or purge the audit entries recorded after each scrub that changed the clipboard.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scrub runs",
	Example: `  # Most recent runs
  clipscrub history list

  # Runs that normalized non-breaking spaces
  clipscrub history list --match "nbsp normalized: true"

  # Regex over the run summary
  clipscrub history list --match 'stripped [1-9]' --mode regex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer store.Close()

		mode, err := filter.ParseMode(historyMatchMode)
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		var f *filter.StringFilter
		if historyMatch != "" {
			if f, err = filter.NewStringFilter(historyMatch, mode); err != nil {
				return errors.ValidationError(err.Error())
			}
		}

		entries, err := store.List(history.ListOptions{Limit: historyLimit, Filter: f})
		if err != nil {
			return errors.HistoryError(err)
		}

		if len(entries) == 0 {
			fmt.Println("No audit entries.")
			return nil
		}

		printHistoryEntries(entries)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all audit entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, err := ConfirmPrompt("Delete all audit entries")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}

		store, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Clear()
		if err != nil {
			return errors.HistoryError(err)
		}

		fmt.Printf("Deleted %d audit entries.\n", removed)
		return nil
	},
}

func openHistoryStore() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath := cfg.History.Path
	if dbPath == "" {
		if dbPath, err = history.DefaultPath(); err != nil {
			return nil, errors.HistoryError(err)
		}
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return nil, errors.HistoryError(err)
	}
	return store, nil
}

func printHistoryEntries(entries []history.Entry) {
	cyan := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	for _, e := range entries {
		cyan.Printf("%s  ", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		faint.Printf("%-8s  ", shortRunID(e.RunID))
		fmt.Println(e.Summary)

		if len(e.Histogram) > 0 {
			names := make([]string, 0, len(e.Histogram))
			for name := range e.Histogram {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, 0, len(names))
			for _, name := range names {
				parts = append(parts, fmt.Sprintf("%s: %d", name, e.Histogram[name]))
			}
			faint.Printf("    %s\n", strings.Join(parts, ", "))
		}
	}
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 25, "Maximum entries to show")
	historyListCmd.Flags().StringVar(&historyMatch, "match", "", "Only show entries whose summary matches")
	historyListCmd.Flags().StringVar(&historyMatchMode, "mode", "contains", "Match mode (exact, contains, regex, fuzzy)")
}
