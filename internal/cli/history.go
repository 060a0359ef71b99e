package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"plagcheck/internal/adapter/similarity"
	"plagcheck/internal/domain"
)

var (
	historyLimit int
	historyJSON  bool
	historyClear bool
	historyID    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past checks",
	Long: `List checks recorded in .plagcheck/history.db, newest first.

Examples:
  plagcheck history
  plagcheck history --limit 5 --json
  plagcheck history --id 0192f5c4-...
  plagcheck history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of checks to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded checks")
	historyCmd.Flags().StringVar(&historyID, "id", "", "show a single check by id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in config")
	}

	history, err := openHistory(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer history.Close()

	out := cmd.OutOrStdout()
	if historyClear {
		if err := history.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	var reports []domain.Report
	if historyID != "" {
		report, err := history.Get(historyID)
		if err != nil {
			return err
		}
		reports = []domain.Report{report}
	} else {
		reports, err = history.List(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
	}

	if historyJSON {
		output, _ := json.MarshalIndent(reports, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	if len(reports) == 0 {
		fmt.Fprintln(out, "No checks recorded.")
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			r.OriginalPath,
			r.CandidatePath,
			r.Backend,
			strconv.Itoa(r.OriginalTokens) + "/" + strconv.Itoa(r.CandidateTokens),
			similarity.Format(r.Similarity.Score),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Checked", "Original", "Candidate", "Backend", "Tokens", "Score"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))

	if historyID == "" {
		total, err := history.Count()
		if err != nil {
			return fmt.Errorf("failed to count history: %w", err)
		}
		fmt.Fprintf(out, "Showing %d of %d checks\n", len(reports), total)
	}
	return nil
}
