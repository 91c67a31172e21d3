package cleaning

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// Canonical categories.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryHomeGarden  = "Home & Garden"
	CategoryBooks       = "Books"
)

// Canonical order statuses.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// CategoryAliases maps known category spellings to their canonical name.
// Keys match exactly; case variants are listed explicitly.
var CategoryAliases = map[string]string{
	"electronics": CategoryElectronics,
	"ELECTRONICS": CategoryElectronics,
	"elec":        CategoryElectronics,
	"Elec":        CategoryElectronics,

	"clothing": CategoryClothing,
	"CLOTHING": CategoryClothing,
	"clot":     CategoryClothing,
	"Clot":     CategoryClothing,

	"home & garden":   CategoryHomeGarden,
	"HOME & GARDEN":   CategoryHomeGarden,
	"home and garden": CategoryHomeGarden,
	"Home and Garden": CategoryHomeGarden,
	"home":            CategoryHomeGarden,
	"Home":            CategoryHomeGarden,

	"books": CategoryBooks,
	"BOOKS": CategoryBooks,
	"book":  CategoryBooks,
	"Book":  CategoryBooks,
}

// StatusAliases maps known status spellings to their canonical name.
var StatusAliases = map[string]string{
	"pending": StatusPending,
	"PENDING": StatusPending,
	"pnding":  StatusPending,
	"Pnding":  StatusPending,
	"p":       StatusPending,
	"P":       StatusPending,

	"shipped": StatusShipped,
	"SHIPPED": StatusShipped,
	"shippd":  StatusShipped,
	"Shippd":  StatusShipped,
	"ship":    StatusShipped,
	"Ship":    StatusShipped,

	"delivered": StatusDelivered,
	"DELIVERED": StatusDelivered,
	"deliverd":  StatusDelivered,
	"Deliverd":  StatusDelivered,
	"complete":  StatusDelivered,
	"Complete":  StatusDelivered,
	"COMPLETE":  StatusDelivered,

	"cancelled": StatusCancelled,
	"CANCELLED": StatusCancelled,
	"canceled":  StatusCancelled,
	"Canceled":  StatusCancelled,
	"cnclld":    StatusCancelled,
	"CNCLLD":    StatusCancelled,
}

// CanonicalCategory maps s through CategoryAliases.
// Unknown values are title-cased word by word.
func CanonicalCategory(s string) string {
	if c, ok := CategoryAliases[s]; ok {
		return c
	}
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Title(language.Und).String(s)
}

// CanonicalStatus maps s through StatusAliases.
// Unknown values are returned unchanged.
func CanonicalStatus(s string) string {
	if c, ok := StatusAliases[s]; ok {
		return c
	}
	return s
}

// standardizeCategories canonicalizes categories and reports how many
// distinct values were merged away.
func standardizeCategories(t *orders.Table, _ Env) (*orders.Table, int) {
	return canonicalize(t, orders.ColCategory, CanonicalCategory)
}

// standardizeStatus canonicalizes statuses and reports how many distinct
// values were merged away.
func standardizeStatus(t *orders.Table, _ Env) (*orders.Table, int) {
	return canonicalize(t, orders.ColStatus, CanonicalStatus)
}

func canonicalize(t *orders.Table, col orders.Column, fn func(string) string) (*orders.Table, int) {
	before := distinct(t, col)
	for i := range t.Orders {
		v := t.Orders[i].Text(col)
		if v.Valid {
			v.String = fn(v.String)
		}
	}
	return t, before - distinct(t, col)
}

// distinct counts the distinct present values of a text column.
func distinct(t *orders.Table, col orders.Column) int {
	seen := make(map[string]struct{})
	for i := range t.Orders {
		if v := t.Orders[i].Text(col); v.Valid {
			seen[v.String] = struct{}{}
		}
	}
	return len(seen)
}
