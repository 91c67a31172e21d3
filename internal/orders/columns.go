package orders

import "strings"

// Column names a known order column.
type Column string

const (
	ColOrderID      Column = "order_id"
	ColCustomerName Column = "customer_name"
	ColEmail        Column = "email"
	ColPhone        Column = "phone"
	ColOrderDate    Column = "order_date"
	ColProductName  Column = "product_name"
	ColCategory     Column = "category"
	ColQuantity     Column = "quantity"
	ColPrice        Column = "price"
	ColStatus       Column = "status"
)

// Columns lists the known columns in their canonical order.
var Columns = []Column{
	ColOrderID,
	ColCustomerName,
	ColEmail,
	ColPhone,
	ColOrderDate,
	ColProductName,
	ColCategory,
	ColQuantity,
	ColPrice,
	ColStatus,
}

// DateLayout is the canonical rendering of order_date.
const DateLayout = "2006-01-02"

// ParseColumn matches a header cell against the known columns.
// Matching ignores case and surrounding whitespace.
func ParseColumn(name string) (Column, bool) {
	key := Column(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range Columns {
		if c == key {
			return c, true
		}
	}
	return "", false
}
