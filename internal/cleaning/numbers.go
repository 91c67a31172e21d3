package cleaning

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// numericRegex matches plain decimal numbers, optionally in scientific
// notation. It keeps strconv from accepting hex, "inf" or "nan".
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber parses a trimmed decimal string.
func parseNumber(s string) (float64, bool) {
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParsePrice strips the currency symbol and thousands separators from raw
// and returns the amount rounded to cents. Amounts that round to zero or
// below are rejected.
func ParsePrice(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	// "$ 12.50" leaves a space behind once the symbol is gone.
	f, ok := parseNumber(strings.TrimSpace(s))
	if !ok {
		return 0, false
	}
	f = math.Round(f*100) / 100
	if f <= 0 {
		return 0, false
	}
	return f, true
}

// ParseQuantity parses raw as a number truncated toward zero.
// Non-positive quantities are rejected.
func ParseQuantity(raw string) (int64, bool) {
	f, ok := parseNumber(strings.TrimSpace(raw))
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f <= 0 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// cleanPrices parses the raw price text of every row that has one.
func cleanPrices(t *orders.Table, _ Env) (*orders.Table, int) {
	invalid := 0
	for i := range t.Orders {
		o := &t.Orders[i]
		if !o.Source.Price.Valid {
			continue
		}
		p, ok := ParsePrice(o.Source.Price.String)
		o.Source.Price = pgtype.Text{}
		if !ok {
			o.Price = pgtype.Float8{}
			invalid++
			continue
		}
		o.Price = pgtype.Float8{Float64: p, Valid: true}
	}
	return t, invalid
}

// cleanQuantities parses the raw quantity text of every row that has one.
func cleanQuantities(t *orders.Table, _ Env) (*orders.Table, int) {
	invalid := 0
	for i := range t.Orders {
		o := &t.Orders[i]
		if !o.Source.Quantity.Valid {
			continue
		}
		q, ok := ParseQuantity(o.Source.Quantity.String)
		o.Source.Quantity = pgtype.Text{}
		if !ok {
			o.Quantity = pgtype.Int8{}
			invalid++
			continue
		}
		o.Quantity = pgtype.Int8{Int64: q, Valid: true}
	}
	return t, invalid
}
