package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

const width = 70

var (
	rule      = strings.Repeat("=", width)
	underline = strings.Repeat("-", width)
)

// FormatCurrency renders v as dollars with thousands separators, e.g. $1,234.50.
func FormatCurrency(v float64) string {
	return "$" + message.NewPrinter(language.English).Sprintf("%.2f", v)
}

// WriteText writes the plain-text report.
func WriteText(w io.Writer, s Summary) error {
	var b bytes.Buffer

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DATA CLEANING REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	section(&b, "OVERVIEW")
	fmt.Fprintf(&b, "Original rows: %d\n", s.OriginalRows)
	fmt.Fprintf(&b, "Cleaned rows: %d\n", s.CleanedRows)
	fmt.Fprintf(&b, "Rows removed: %d\n", s.RowsRemoved)
	fmt.Fprintf(&b, "Columns: %d\n\n", s.Columns)

	section(&b, "CLEANING ACTIONS PERFORMED")
	for i, a := range s.Actions {
		fmt.Fprintf(&b, "%d. %s: %d\n", i+1, a.Description, a.Count)
	}
	fmt.Fprintln(&b)

	section(&b, "DATA QUALITY COMPARISON")
	fmt.Fprintf(&b, "%-20s %-20s %-20s\n", "Field", "Missing Before", "Missing After")
	fmt.Fprintln(&b, underline)
	for _, q := range s.Quality {
		fmt.Fprintf(&b, "%-20s %-20d %-20d\n", q.Field, q.MissingBefore, q.MissingAfter)
	}
	fmt.Fprintln(&b)

	section(&b, "FINAL CLEANED DATA STATISTICS")
	fmt.Fprintf(&b, "Total valid orders: %d\n", s.CleanedRows)
	fmt.Fprintf(&b, "Unique customers: %d\n", s.UniqueCustomers)
	if s.HasDates() {
		fmt.Fprintf(&b, "Date range: %s to %s\n",
			s.FirstDate.Format(orders.DateLayout), s.LastDate.Format(orders.DateLayout))
	} else {
		fmt.Fprintln(&b, "Date range: No valid dates")
	}
	fmt.Fprintf(&b, "Total revenue: %s\n", FormatCurrency(s.Revenue))
	fmt.Fprintf(&b, "Average order value: $%.2f\n", s.AverageOrderValue)
	fmt.Fprintf(&b, "Total items sold: %d\n\n", s.ItemsSold)

	section(&b, "CATEGORY BREAKDOWN")
	writeShares(&b, s.Categories)

	section(&b, "ORDER STATUS BREAKDOWN")
	writeShares(&b, s.Statuses)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "END OF REPORT")
	fmt.Fprintln(&b, rule)

	_, err := w.Write(b.Bytes())
	return err
}

func section(b *bytes.Buffer, title string) {
	fmt.Fprintln(b, title)
	fmt.Fprintln(b, underline)
}

func writeShares(b *bytes.Buffer, shares []Share) {
	for _, sh := range shares {
		fmt.Fprintf(b, "%-20s %-10d (%.1f%%)\n", sh.Value, sh.Count, sh.Percent)
	}
	fmt.Fprintln(b)
}

// WriteFile writes the plain-text report to path, creating parent
// directories as needed.
func WriteFile(path string, s Summary) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteText(w, s)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
