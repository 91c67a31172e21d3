package orders

// Table is an ordered set of orders sharing one header.
type Table struct {
	// Header lists the column names in file order, as they appeared in the input.
	Header []string
	Orders []Order
}

// NewTable creates an empty table with the canonical header.
func NewTable() *Table {
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[i] = string(c)
	}
	return &Table{Header: header}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Orders)
}

// HasColumn reports whether the header contains col.
func (t *Table) HasColumn(col Column) bool {
	for _, h := range t.Header {
		if c, ok := ParseColumn(h); ok && c == col {
			return true
		}
	}
	return false
}

// ExtraColumns returns the header names that are not known columns, in order.
func (t *Table) ExtraColumns() []string {
	var extras []string
	for _, h := range t.Header {
		if _, ok := ParseColumn(h); !ok {
			extras = append(extras, h)
		}
	}
	return extras
}

// Cell renders the value of the named header column for row i.
func (t *Table) Cell(i int, name string) string {
	o := &t.Orders[i]
	if c, ok := ParseColumn(name); ok {
		return o.Value(c)
	}
	return o.Extra[name]
}

// Missing counts rows with no value in the named header column.
func (t *Table) Missing(name string) int {
	col, known := ParseColumn(name)
	n := 0
	for i := range t.Orders {
		if known {
			if !t.Orders[i].Present(col) {
				n++
			}
		} else if t.Orders[i].Extra[name] == "" {
			n++
		}
	}
	return n
}

// RowKeys returns one identity key per row, equal only for rows that are
// identical in every column.
func (t *Table) RowKeys() []string {
	extras := t.ExtraColumns()
	keys := make([]string, len(t.Orders))
	for i := range t.Orders {
		keys[i] = t.Orders[i].key(extras)
	}
	return keys
}

// Clone returns a deep copy of the table. The copy shares no state with t.
func (t *Table) Clone() *Table {
	c := &Table{
		Header: append([]string(nil), t.Header...),
		Orders: make([]Order, len(t.Orders)),
	}
	for i, o := range t.Orders {
		c.Orders[i] = o.clone()
	}
	return c
}
