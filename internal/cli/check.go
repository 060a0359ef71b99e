package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"plagcheck/internal/adapter/similarity"
	"plagcheck/internal/usecase"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <original.txt> <candidate.txt> <result.txt>",
	Short: "Score one candidate against an original",
	Long: `Compare a candidate document with the original and write the similarity
score, rounded to two decimals, to the result file.

Examples:
  plagcheck check orig.txt copy.txt result.txt
  plagcheck check orig.txt copy.txt out/result.txt --json`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	deps, err := newCheckUseCase(false)
	if err != nil {
		return err
	}
	defer deps.history.Close()

	report, err := deps.check.Check(cmd.Context(), usecase.CheckRequest{
		OriginalPath:  args[0],
		CandidatePath: args[1],
		ResultPath:    args[2],
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "Check complete: similarity %s, result saved to %s\n",
		similarity.Format(report.Similarity.Score), report.ResultPath)
	return nil
}
