package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMunkholm/OrderClean/internal/config"
	"github.com/JonMunkholm/OrderClean/internal/generator"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

func runGenerate(cfg *config.Config, args []string, stdout io.Writer) error {
	rows := cfg.Generator.Rows
	seed := cfg.Generator.Seed
	output := cfg.Paths.Input

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.IntVar(&rows, "rows", rows, "number of rows to generate")
	fs.Int64Var(&seed, "seed", seed, "random seed")
	fs.StringVar(&output, "output", output, "where to write the messy CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", rows)
	}

	tbl := generator.Generate(generator.Config{Rows: rows, Seed: uint64(seed)})
	if err := orders.Save(output, tbl); err != nil {
		return err
	}

	is := generator.Inspect(tbl)
	slog.Info("dataset generated", "path", output, "rows", tbl.Len(), "seed", seed)

	fmt.Fprintf(stdout, "Dataset saved to: %s\n", output)
	fmt.Fprintf(stdout, "   Total rows: %d\n", tbl.Len())
	fmt.Fprintln(stdout, "\n=== DATA QUALITY ISSUES SUMMARY ===")
	fmt.Fprintf(stdout, "1. Missing emails: %d\n", is.MissingEmails)
	fmt.Fprintf(stdout, "2. Missing phones: %d\n", is.MissingPhones)
	fmt.Fprintf(stdout, "3. Missing prices: %d\n", is.MissingPrices)
	fmt.Fprintf(stdout, "4. Missing dates: %d\n", is.MissingDates)
	fmt.Fprintf(stdout, "5. Duplicate rows: %d\n", is.DuplicateRows)
	fmt.Fprintf(stdout, "6. Unique product name variations: %d\n", is.ProductVariants)
	fmt.Fprintf(stdout, "7. Unique category variations: %d\n", is.CategoryVariants)
	fmt.Fprintf(stdout, "8. Unique status variations: %d\n", is.StatusVariants)
	return nil
}
