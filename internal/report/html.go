package report

//go:generate templ generate

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// HTML lives in report.templ; these helpers format the values it shows.

func dateRange(s Summary) string {
	if !s.HasDates() {
		return "No valid dates"
	}
	return s.FirstDate.Format(orders.DateLayout) + " to " + s.LastDate.Format(orders.DateLayout)
}

func averageValue(s Summary) string {
	return fmt.Sprintf("$%.2f", s.AverageOrderValue)
}

func percent(sh Share) string {
	return fmt.Sprintf("%.1f%%", sh.Percent)
}

// WriteHTMLFile renders the HTML report to path, creating parent directories
// as needed.
func WriteHTMLFile(ctx context.Context, path, title string, s Summary) error {
	return writeFile(path, func(w io.Writer) error {
		return HTML(title, s).Render(ctx, w)
	})
}
