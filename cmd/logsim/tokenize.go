package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logsim/internal/diagfmt"
	"logsim/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.def|dir",
	Short: "Tokenize a circuit definition file",
	Long:  `Tokenize prints the symbol stream of a definition file: kind, name id, text and position`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if !st.IsDir() {
		result, err := driver.Tokenize(path)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		return printTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, format, color, maxDiagnostics)
	}

	results, err := driver.TokenizeDir(cmd.Context(), path, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			continue
		}
		if format == "pretty" {
			fmt.Fprintf(out, "== %s ==\n", r.Path)
		}
		if err := printTokens(out, cmd.ErrOrStderr(), r.Result, format, color, maxDiagnostics); err != nil {
			return err
		}
	}
	return nil
}

// printTokens writes lexical diagnostics to errOut and the symbols to out.
func printTokens(out, errOut io.Writer, result *driver.TokenizeResult, format string, color bool, maxDiagnostics int) error {
	if result.Errors.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: color, Max: maxDiagnostics}
		if err := diagfmt.Pretty(errOut, result.Errors, result.File, opts); err != nil {
			return err
		}
	}
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Symbols, result.Names)
	}
	return diagfmt.FormatTokensPretty(out, result.Symbols, result.Names)
}
