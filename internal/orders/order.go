package orders

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Order is one row of the order table.
type Order struct {
	OrderID      pgtype.Text
	CustomerName pgtype.Text
	Email        pgtype.Text
	Phone        pgtype.Text
	OrderDate    pgtype.Date
	ProductName  pgtype.Text
	Category     pgtype.Text
	Quantity     pgtype.Int8
	Price        pgtype.Float8
	Status       pgtype.Text

	// Source holds raw text for typed columns not yet parsed.
	Source Source

	// Extra holds cells of unknown columns, keyed by header name.
	Extra map[string]string
}

// Source is the unparsed text of the typed columns.
// A field is cleared once the owning step has parsed it.
type Source struct {
	OrderDate pgtype.Text
	Quantity  pgtype.Text
	Price     pgtype.Text
}

// Text returns the text field backing col, or nil if col is not a text column.
func (o *Order) Text(col Column) *pgtype.Text {
	switch col {
	case ColOrderID:
		return &o.OrderID
	case ColCustomerName:
		return &o.CustomerName
	case ColEmail:
		return &o.Email
	case ColPhone:
		return &o.Phone
	case ColProductName:
		return &o.ProductName
	case ColCategory:
		return &o.Category
	case ColStatus:
		return &o.Status
	}
	return nil
}

// Present reports whether col holds a value, parsed or not.
func (o *Order) Present(col Column) bool {
	switch col {
	case ColOrderDate:
		return o.OrderDate.Valid || o.Source.OrderDate.Valid
	case ColQuantity:
		return o.Quantity.Valid || o.Source.Quantity.Valid
	case ColPrice:
		return o.Price.Valid || o.Source.Price.Valid
	}
	if t := o.Text(col); t != nil {
		return t.Valid
	}
	return false
}

// Value renders col as it is written to the output file.
// Absent values render as the empty string.
func (o *Order) Value(col Column) string {
	switch col {
	case ColOrderDate:
		if o.OrderDate.Valid {
			return o.OrderDate.Time.Format(DateLayout)
		}
		return o.Source.OrderDate.String
	case ColQuantity:
		if o.Quantity.Valid {
			return strconv.FormatInt(o.Quantity.Int64, 10)
		}
		return o.Source.Quantity.String
	case ColPrice:
		if o.Price.Valid {
			return strconv.FormatFloat(o.Price.Float64, 'f', -1, 64)
		}
		return o.Source.Price.String
	}
	if t := o.Text(col); t != nil && t.Valid {
		return t.String
	}
	return ""
}

// Set stores a raw cell value for col as loaded from a file.
// The empty string is absent.
func (o *Order) Set(col Column, raw string) {
	v := pgtype.Text{String: raw, Valid: raw != ""}
	switch col {
	case ColOrderDate:
		o.OrderDate = pgtype.Date{}
		o.Source.OrderDate = v
	case ColQuantity:
		o.Quantity = pgtype.Int8{}
		o.Source.Quantity = v
	case ColPrice:
		o.Price = pgtype.Float8{}
		o.Source.Price = v
	default:
		if t := o.Text(col); t != nil {
			*t = v
		}
	}
}

// key identifies the row across every column for exact-duplicate detection.
func (o *Order) key(extras []string) string {
	var b strings.Builder
	for _, col := range Columns {
		if o.Present(col) {
			b.WriteByte('1')
			b.WriteString(o.Value(col))
		} else {
			b.WriteByte('0')
		}
		b.WriteByte(0x1f)
	}
	for _, name := range extras {
		b.WriteString(o.Extra[name])
		b.WriteByte(0x1f)
	}
	return b.String()
}

// clone returns a deep copy of the order.
func (o Order) clone() Order {
	if o.Extra != nil {
		extra := make(map[string]string, len(o.Extra))
		for k, v := range o.Extra {
			extra[k] = v
		}
		o.Extra = extra
	}
	return o
}
