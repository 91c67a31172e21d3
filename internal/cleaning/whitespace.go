package cleaning

import (
	"strings"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// WhitespaceColumns are the free-text columns cleaned by clean_whitespace.
var WhitespaceColumns = []orders.Column{
	orders.ColCustomerName,
	orders.ColEmail,
	orders.ColProductName,
	orders.ColCategory,
	orders.ColStatus,
}

// cleanWhitespace trims text fields and collapses internal whitespace runs.
// A row is counted once per column whose value had leading or trailing
// whitespace. Values that are blank after trimming become absent.
func cleanWhitespace(t *orders.Table, env Env) (*orders.Table, int) {
	total := 0
	for _, col := range WhitespaceColumns {
		if !t.HasColumn(col) {
			continue
		}

		count := 0
		for i := range t.Orders {
			v := t.Orders[i].Text(col)
			if !v.Valid {
				continue
			}
			if strings.TrimSpace(v.String) != v.String {
				count++
			}
			v.String = collapseSpace(v.String)
			v.Valid = v.String != ""
		}

		if count > 0 {
			env.logger().Debug("whitespace cleaned", "column", string(col), "count", count)
		}
		total += count
	}
	return t, total
}

// collapseSpace trims s and replaces every whitespace run with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
