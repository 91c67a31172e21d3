package generator

import "github.com/JonMunkholm/OrderClean/internal/orders"

// Issues counts the data quality problems present in a table.
type Issues struct {
	MissingEmails    int `json:"missing_emails"`
	MissingPhones    int `json:"missing_phones"`
	MissingPrices    int `json:"missing_prices"`
	MissingDates     int `json:"missing_dates"`
	DuplicateRows    int `json:"duplicate_rows"`
	ProductVariants  int `json:"product_variants"`
	CategoryVariants int `json:"category_variants"`
	StatusVariants   int `json:"status_variants"`
}

// Inspect counts missing values, exact duplicate rows and distinct
// spellings of the free-text columns.
func Inspect(t *orders.Table) Issues {
	is := Issues{
		MissingEmails: t.Missing(string(orders.ColEmail)),
		MissingPhones: t.Missing(string(orders.ColPhone)),
		MissingPrices: t.Missing(string(orders.ColPrice)),
		MissingDates:  t.Missing(string(orders.ColOrderDate)),
	}

	seen := make(map[string]bool)
	for _, key := range t.RowKeys() {
		if seen[key] {
			is.DuplicateRows++
		}
		seen[key] = true
	}

	is.ProductVariants = distinctValues(t, orders.ColProductName)
	is.CategoryVariants = distinctValues(t, orders.ColCategory)
	is.StatusVariants = distinctValues(t, orders.ColStatus)
	return is
}

func distinctValues(t *orders.Table, col orders.Column) int {
	seen := make(map[string]struct{})
	for i := range t.Orders {
		if v := t.Orders[i].Text(col); v != nil && v.Valid {
			seen[v.String] = struct{}{}
		}
	}
	return len(seen)
}
