package orders

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input string
		want  Column
		ok    bool
	}{
		{"order_id", ColOrderID, true},
		{"  Email ", ColEmail, true},
		{"PRICE", ColPrice, true},
		{"notes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseColumn(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseColumn(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestOrder_ValueRendersTypedFields(t *testing.T) {
	o := Order{
		OrderDate: pgtype.Date{Time: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Valid: true},
		Quantity:  pgtype.Int8{Int64: 3, Valid: true},
		Price:     pgtype.Float8{Float64: 12.5, Valid: true},
	}

	if got := o.Value(ColOrderDate); got != "2024-01-05" {
		t.Errorf("Value(order_date) = %q, want %q", got, "2024-01-05")
	}
	if got := o.Value(ColQuantity); got != "3" {
		t.Errorf("Value(quantity) = %q, want %q", got, "3")
	}
	if got := o.Value(ColPrice); got != "12.5" {
		t.Errorf("Value(price) = %q, want %q", got, "12.5")
	}
	if got := o.Value(ColEmail); got != "" {
		t.Errorf("Value(email) = %q, want empty for absent", got)
	}
}

func TestTable_Missing(t *testing.T) {
	tbl := NewTable()
	tbl.Header = append(tbl.Header, "notes")

	var a, b Order
	a.Set(ColEmail, "a@example.com")
	a.Set(ColPrice, "9.99")
	a.Extra = map[string]string{"notes": "x"}
	b.Set(ColEmail, "")
	tbl.Orders = []Order{a, b}

	if got := tbl.Missing("email"); got != 1 {
		t.Errorf("Missing(email) = %d, want 1", got)
	}
	if got := tbl.Missing("price"); got != 1 {
		t.Errorf("Missing(price) = %d, want 1", got)
	}
	if got := tbl.Missing("phone"); got != 2 {
		t.Errorf("Missing(phone) = %d, want 2", got)
	}
	if got := tbl.Missing("notes"); got != 1 {
		t.Errorf("Missing(notes) = %d, want 1", got)
	}
}

func TestTable_RowKeys(t *testing.T) {
	tbl := NewTable()
	tbl.Header = append(tbl.Header, "notes")

	var a, b, c, d Order
	a.Set(ColEmail, "a@example.com")
	b.Set(ColEmail, "a@example.com")
	c.Set(ColEmail, "a@example.com ")
	d.Set(ColEmail, "a@example.com")
	d.Extra = map[string]string{"notes": "different"}
	tbl.Orders = []Order{a, b, c, d}

	keys := tbl.RowKeys()
	if keys[0] != keys[1] {
		t.Error("identical rows should share a key")
	}
	if keys[0] == keys[2] {
		t.Error("rows differing by whitespace should not share a key")
	}
	if keys[0] == keys[3] {
		t.Error("rows differing in an extra column should not share a key")
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := NewTable()
	tbl.Header = append(tbl.Header, "notes")
	var o Order
	o.Set(ColCustomerName, "Jane")
	o.Extra = map[string]string{"notes": "keep"}
	tbl.Orders = []Order{o}

	snapshot := tbl.Clone()
	tbl.Orders[0].CustomerName.String = "changed"
	tbl.Orders[0].Extra["notes"] = "changed"
	tbl.Orders = tbl.Orders[:0]

	if snapshot.Len() != 1 {
		t.Fatalf("snapshot Len() = %d, want 1", snapshot.Len())
	}
	if got := snapshot.Orders[0].CustomerName.String; got != "Jane" {
		t.Errorf("snapshot CustomerName = %q, want %q", got, "Jane")
	}
	if got := snapshot.Orders[0].Extra["notes"]; got != "keep" {
		t.Errorf("snapshot notes = %q, want %q", got, "keep")
	}
}
