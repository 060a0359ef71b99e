package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"plagcheck/config"
	"plagcheck/internal/adapter/fs"
	"plagcheck/internal/logging"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	backend  string
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "plagcheck <original.txt> <candidate.txt> <result.txt>",
	Short: "Plagiarism checker - Score how much of a document was copied from another",
	Long: `plagcheck tokenizes two plain-text documents, compares them with Jaccard and
cosine similarity and writes the averaged score, with two decimals, to a
result file.

Example usage:
  plagcheck orig.txt copy.txt result.txt        # Check one candidate
  plagcheck batch orig.txt submissions/ out/    # Check a directory of candidates
  plagcheck tokenize orig.txt                   # Show the tokens of a document
  plagcheck history --limit 10                  # Show recent checks`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if backend != "" {
			cfg.Tokenizer.Backend = backend
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits with status 1 on any failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", describe(err))
		os.Exit(1)
	}
}

// describe adds a hint for failures users commonly hit.
func describe(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotTxt):
		return err.Error() + " (plagcheck only reads and writes .txt files)"
	case errors.Is(err, fs.ErrEncoding):
		return err.Error() + " (save the document as UTF-8)"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return err.Error()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./plagcheck.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory for config and history (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "tokenizer backend: dict or whitespace (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func GetLogger() *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
