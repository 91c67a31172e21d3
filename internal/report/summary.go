// Package report renders the before/after quality report of a cleaning run.
//
// Summarize computes every figure once; WriteText and HTML only format it.
package report

import (
	"slices"
	"time"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// FieldQuality compares missing values of one column before and after cleaning.
type FieldQuality struct {
	Field         string `json:"field"`
	MissingBefore int    `json:"missing_before"`
	MissingAfter  int    `json:"missing_after"`
}

// Share is one value of a breakdown with its row count.
type Share struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary holds the figures shown in a report.
type Summary struct {
	OriginalRows int              `json:"original_rows"`
	CleanedRows  int              `json:"cleaned_rows"`
	RowsRemoved  int              `json:"rows_removed"`
	Columns      int              `json:"columns"`
	Actions      []cleaning.Entry `json:"actions"`
	Quality      []FieldQuality   `json:"quality"`

	UniqueCustomers int `json:"unique_customers"`

	// FirstDate and LastDate are zero when no row has a valid date.
	FirstDate time.Time `json:"first_date,omitzero"`
	LastDate  time.Time `json:"last_date,omitzero"`

	// Revenue is the sum of all valid prices; AverageOrderValue their mean.
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	ItemsSold         int64   `json:"items_sold"`

	Categories []Share `json:"categories"`
	Statuses   []Share `json:"statuses"`
}

// HasDates reports whether the cleaned table had any valid order date.
func (s *Summary) HasDates() bool {
	return !s.FirstDate.IsZero()
}

// Summarize computes the report figures from the original snapshot, the
// cleaned table and the change log of the run.
func Summarize(original, cleaned *orders.Table, log *cleaning.ChangeLog) Summary {
	s := Summary{
		OriginalRows: original.Len(),
		CleanedRows:  cleaned.Len(),
		RowsRemoved:  original.Len() - cleaned.Len(),
		Columns:      len(cleaned.Header),
		Actions:      log.Entries(),
	}

	for _, name := range cleaned.Header {
		s.Quality = append(s.Quality, FieldQuality{
			Field:         name,
			MissingBefore: original.Missing(name),
			MissingAfter:  cleaned.Missing(name),
		})
	}

	customers := make(map[string]struct{})
	prices := 0
	for i := range cleaned.Orders {
		o := &cleaned.Orders[i]
		if o.CustomerName.Valid {
			customers[o.CustomerName.String] = struct{}{}
		}
		if o.OrderDate.Valid {
			d := o.OrderDate.Time
			if s.FirstDate.IsZero() || d.Before(s.FirstDate) {
				s.FirstDate = d
			}
			if d.After(s.LastDate) {
				s.LastDate = d
			}
		}
		if o.Price.Valid {
			s.Revenue += o.Price.Float64
			prices++
		}
		if o.Quantity.Valid {
			s.ItemsSold += o.Quantity.Int64
		}
	}
	s.UniqueCustomers = len(customers)
	if prices > 0 {
		s.AverageOrderValue = s.Revenue / float64(prices)
	}

	s.Categories = breakdown(cleaned, orders.ColCategory)
	s.Statuses = breakdown(cleaned, orders.ColStatus)
	return s
}

// breakdown counts the present values of a text column, most frequent
// first. Ties keep the order of first appearance. Percentages are of all
// rows, absent values included.
func breakdown(t *orders.Table, col orders.Column) []Share {
	var shares []Share
	index := make(map[string]int)
	for i := range t.Orders {
		v := t.Orders[i].Text(col)
		if v == nil || !v.Valid {
			continue
		}
		if j, ok := index[v.String]; ok {
			shares[j].Count++
			continue
		}
		index[v.String] = len(shares)
		shares = append(shares, Share{Value: v.String, Count: 1})
	}

	slices.SortStableFunc(shares, func(a, b Share) int {
		return b.Count - a.Count
	})
	for i := range shares {
		shares[i].Percent = float64(shares[i].Count) / float64(t.Len()) * 100
	}
	return shares
}
