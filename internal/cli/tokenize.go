package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plagcheck/internal/adapter/analyzer"
	"plagcheck/internal/adapter/fs"
)

var (
	tokenizeJSON      bool
	tokenizeStopwords bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file.txt]",
	Short: "Print the token sequence of a document",
	Long: `Run a document through the configured tokenizer and print the tokens that
similarity scoring would see.

Examples:
  plagcheck tokenize orig.txt
  plagcheck tokenize orig.txt --backend whitespace --json
  plagcheck tokenize --stopwords`,
	Args: func(cmd *cobra.Command, args []string) error {
		if tokenizeStopwords {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "output tokens as a JSON array")
	tokenizeCmd.Flags().BoolVar(&tokenizeStopwords, "stopwords", false, "print the stopword list instead")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	if tokenizeStopwords {
		return printTokens(cmd, analyzer.Stopwords(), "stopwords")
	}

	text, err := fs.NewReader().ReadDocument(args[0])
	if err != nil {
		return err
	}

	tok, name, err := newTokenizer(GetConfig(), false)
	if err != nil {
		return err
	}
	tokens := tok.Tokenize(text)
	GetLogger().Debug("tokenized document", "path", args[0], "backend", name, "tokens", len(tokens))

	return printTokens(cmd, tokens, fmt.Sprintf("tokens (%s backend)", name))
}

func printTokens(cmd *cobra.Command, tokens []string, label string) error {
	out := cmd.OutOrStdout()
	if tokenizeJSON {
		output, _ := json.MarshalIndent(tokens, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "%d %s\n", len(tokens), label)
	if len(tokens) > 0 {
		fmt.Fprintln(out, strings.Join(tokens, " "))
	}
	return nil
}
