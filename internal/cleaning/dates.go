package cleaning

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// DateLayouts are tried in order; the first layout that parses wins.
// Day and month accept one or two digits.
var DateLayouts = []string{
	"1/2/2006",       // 01/15/2024
	"2-1-2006",       // 15-01-2024
	"2006-1-2",       // 2024-01-15
	"Jan 2, 2006",    // Jan 15, 2024
	"2 January 2006", // 15 January 2024
}

// ParseDate parses raw with DateLayouts and rejects dates after now.
// The returned time is midnight UTC of the parsed calendar day.
func ParseDate(raw string, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range DateLayouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		// Future orders are invalid.
		if t.After(now) {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// standardizeDates parses the raw order_date text of every row that has one.
func standardizeDates(t *orders.Table, env Env) (*orders.Table, int) {
	invalid := 0
	for i := range t.Orders {
		o := &t.Orders[i]
		if !o.Source.OrderDate.Valid {
			continue
		}
		d, ok := ParseDate(o.Source.OrderDate.String, env.Now)
		o.Source.OrderDate = pgtype.Text{}
		if !ok {
			o.OrderDate = pgtype.Date{}
			invalid++
			continue
		}
		o.OrderDate = pgtype.Date{Time: d, Valid: true}
	}
	return t, invalid
}
