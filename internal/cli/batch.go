package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"plagcheck/internal/adapter/analyzer"
	"plagcheck/internal/adapter/fs"
	"plagcheck/internal/adapter/similarity"
	"plagcheck/internal/domain"
	"plagcheck/internal/usecase"
)

var (
	batchIncludes []string
	batchExcludes []string
	batchJSON     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <original.txt> <candidates-dir> <out-dir>",
	Short: "Score every candidate in a directory against an original",
	Long: `Check each .txt file under the candidates directory against the original.
One result file per candidate is written under the output directory, at the
candidate's relative path. Each pair is scored on its own.

Examples:
  plagcheck batch orig.txt submissions/ results/
  plagcheck batch orig.txt submissions/ results/ --exclude "drafts/**"`,
	Args: cobra.ExactArgs(3),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringSliceVar(&batchIncludes, "include", nil, "glob patterns to include (default from config)")
	batchCmd.Flags().StringSliceVar(&batchExcludes, "exclude", nil, "glob patterns to exclude (default from config)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "output the batch result as JSON")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	candidatesDir, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(candidatesDir)
	if err != nil {
		return fmt.Errorf("candidates directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", candidatesDir)
	}

	includes := cfg.Batch.Includes
	if len(batchIncludes) > 0 {
		includes = batchIncludes
	}
	excludes := cfg.Batch.Excludes
	if len(batchExcludes) > 0 {
		excludes = batchExcludes
	}

	deps, err := newCheckUseCase(true)
	if err != nil {
		return err
	}
	defer deps.history.Close()

	batchUC := usecase.NewBatchUseCase(deps.check, fs.NewWalker(includes, excludes), GetLogger())

	var progress usecase.ProgressFunc
	if !batchJSON && isatty.IsTerminal(os.Stderr.Fd()) {
		progress = newProgress()
	}

	result, err := batchUC.Run(cmd.Context(), usecase.BatchRequest{
		OriginalPath:  args[0],
		CandidatesDir: candidatesDir,
		OutputDir:     args[2],
	}, progress)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	if cache, ok := deps.tokenizer.(*analyzer.CachedTokenizer); ok {
		hits, misses := cache.Stats()
		GetLogger().Debug("token cache", "hits", hits, "misses", misses, "entries", cache.Size())
	}

	out := cmd.OutOrStdout()
	if batchJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	printBatchSummary(result, candidatesDir)
	return nil
}

// newProgress returns a callback drawing a progress bar on stderr. The bar
// is created on the first call, once the total is known.
func newProgress() usecase.ProgressFunc {
	var (
		bar       *progressbar.ProgressBar
		mu        sync.Mutex
		startTime time.Time
	)

	return func(processed, total int, current string) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Checking[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Checking[reset] ETA: %s", formatDuration(eta)))
		}
	}
}

func printBatchSummary(result *domain.BatchResult, candidatesDir string) {
	if len(result.Reports) == 0 && len(result.Failures) == 0 {
		fmt.Println("No candidate documents found.")
		return
	}

	rows := make([][]string, 0, len(result.Reports))
	for _, r := range result.Reports {
		rows = append(rows, []string{
			relativeTo(candidatesDir, r.CandidatePath),
			similarity.Format(r.Similarity.Jaccard),
			similarity.Format(r.Similarity.Cosine),
			similarity.Format(r.Similarity.Score),
			r.ResultPath,
		})
	}
	if len(rows) > 0 {
		fmt.Println(renderTable(
			[]string{"Candidate", "Jaccard", "Cosine", "Score", "Result"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
		))
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Original:  %s\n", result.OriginalPath)
	fmt.Printf("  Checked:   %d\n", len(result.Reports))
	fmt.Printf("  Failed:    %d\n", len(result.Failures))

	if len(result.Failures) > 0 {
		fmt.Printf("\nFailures:\n")
		for _, f := range result.Failures {
			fmt.Printf("  - %s: %s\n", relativeTo(candidatesDir, f.CandidatePath), f.Error)
		}
	}
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
