package store

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// copyColumns is the column order of orderRows.
var copyColumns = []string{
	"run_id", "row_number",
	"order_id", "customer_name", "email", "phone", "order_date",
	"product_name", "category", "quantity", "price", "status",
	"extra",
}

// orderRows converts cleaned orders into COPY rows. Absent values are NULL;
// extra columns are stored as a JSON object, or NULL when there are none.
func orderRows(runID pgtype.UUID, t *orders.Table) [][]any {
	extras := t.ExtraColumns()
	rows := make([][]any, len(t.Orders))
	for i := range t.Orders {
		o := &t.Orders[i]

		var extra any
		if len(extras) > 0 {
			m := make(map[string]string, len(extras))
			for _, name := range extras {
				m[name] = o.Extra[name]
			}
			extra = m
		}

		rows[i] = []any{
			runID, int32(i + 1),
			o.OrderID, o.CustomerName, o.Email, o.Phone, o.OrderDate,
			o.ProductName, o.Category, o.Quantity, o.Price, o.Status,
			extra,
		}
	}
	return rows
}
