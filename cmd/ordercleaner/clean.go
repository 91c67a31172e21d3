package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/OrderClean/internal/config"
	"github.com/JonMunkholm/OrderClean/internal/core"
)

func runClean(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	paths := core.FilePaths{
		Input:      cfg.Paths.Input,
		Output:     cfg.Paths.Output,
		Report:     cfg.Paths.Report,
		HTMLReport: cfg.Paths.HTMLReport,
	}

	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&paths.Input, "input", paths.Input, "messy CSV to clean")
	fs.StringVar(&paths.Output, "output", paths.Output, "where to write the cleaned CSV")
	fs.StringVar(&paths.Report, "report", paths.Report, "where to write the text report (empty to skip)")
	fs.StringVar(&paths.HTMLReport, "html", paths.HTMLReport, "where to write the HTML report (empty to skip)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if paths.Input == paths.Output {
		return fmt.Errorf("output path %q would overwrite the input", paths.Output)
	}

	runStore, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	run, err := newService(cfg, runStore).CleanFile(ctx, paths)
	if err != nil {
		return err
	}

	printRunSummary(stdout, run, paths)
	return nil
}

// printRunSummary writes the closing summary of a clean command.
func printRunSummary(w io.Writer, run *core.Run, paths core.FilePaths) {
	rule := strings.Repeat("=", 60)
	s := run.Summary

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Original dataset: %d rows\n", s.OriginalRows)
	fmt.Fprintf(w, "Cleaned dataset:  %d rows\n", s.CleanedRows)
	fmt.Fprintf(w, "Rows removed:     %d\n", s.RowsRemoved)
	fmt.Fprintf(w, "Data quality improved across %d steps\n", run.Log.Len())
	for _, c := range run.Log.Entries() {
		fmt.Fprintf(w, "  - %s: %d\n", c.Description, c.Count)
	}

	fmt.Fprintln(w, "\nOutput files created:")
	for _, p := range []string{paths.Output, paths.Report, paths.HTMLReport} {
		if p != "" {
			fmt.Fprintf(w, "  - %s\n", p)
		}
	}
	if run.Persisted {
		fmt.Fprintf(w, "\nRun %s saved to the database.\n", run.ID)
	}
	fmt.Fprintln(w, rule)
}
