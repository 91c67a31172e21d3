package orders

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `order_id,customer_name,email,phone,order_date,product_name,category,quantity,price,status
ORD1000,"  John  Smith ",JOHN.SMITH@EXAMPLE.COM,(555) 123-4567,01/15/2024,iPhone 13,elec,2,"$1,299.99",SHIPPED
#1001,Jane Doe,,555.123.4567,15 January 2024,Jeans,clothing,-1,,pnding
`

func TestDecode(t *testing.T) {
	tbl, err := Decode(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if len(tbl.Header) != len(Columns) {
		t.Errorf("len(Header) = %d, want %d", len(tbl.Header), len(Columns))
	}

	first := tbl.Orders[0]
	if first.CustomerName.String != "  John  Smith " {
		t.Errorf("CustomerName = %q, want raw value preserved", first.CustomerName.String)
	}
	if first.OrderDate.Valid {
		t.Error("OrderDate should not be parsed on load")
	}
	if got := first.Source.Price.String; got != "$1,299.99" {
		t.Errorf("Source.Price = %q, want %q", got, "$1,299.99")
	}

	second := tbl.Orders[1]
	if second.Email.Valid {
		t.Error("empty email should be absent")
	}
	if second.Present(ColPrice) {
		t.Error("empty price should be absent")
	}
	if !second.Present(ColQuantity) {
		t.Error("quantity -1 should be present before cleaning")
	}
}

func TestDecode_ColumnOrderAndExtras(t *testing.T) {
	input := "Status,notes,ORDER_ID\nshipped,gift wrap,A1\n"
	tbl, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !tbl.HasColumn(ColStatus) || !tbl.HasColumn(ColOrderID) {
		t.Error("expected status and order_id to be recognised")
	}
	if tbl.HasColumn(ColEmail) {
		t.Error("email should not be reported as present")
	}

	extras := tbl.ExtraColumns()
	if len(extras) != 1 || extras[0] != "notes" {
		t.Fatalf("ExtraColumns() = %v, want [notes]", extras)
	}
	if got := tbl.Cell(0, "notes"); got != "gift wrap" {
		t.Errorf("Cell(notes) = %q, want %q", got, "gift wrap")
	}
	if got := tbl.Cell(0, "ORDER_ID"); got != "A1" {
		t.Errorf("Cell(ORDER_ID) = %q, want %q", got, "A1")
	}
}

func TestDecode_ShortRowsArePadded(t *testing.T) {
	tbl, err := Decode(strings.NewReader("order_id,email,phone\nA1\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if tbl.Orders[0].Present(ColEmail) || tbl.Orders[0].Present(ColPhone) {
		t.Error("missing trailing cells should be absent")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "duplicate header",
			input:   "email,EMAIL\na,b\n",
			wantErr: ErrInvalidCSV,
		},
		{
			name:    "blank header cell",
			input:   "email,,phone\n",
			wantErr: ErrInvalidCSV,
		},
		{
			name:    "row wider than header",
			input:   "order_id,email\nA1,a@example.com\nA2,b@example.com,extra\n",
			wantErr: ErrInvalidCSV,
		},
		{
			name:    "unterminated quote",
			input:   "email\n\"broken\n",
			wantErr: ErrInvalidCSV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_WideRowReportsLine(t *testing.T) {
	input := "order_id,notes\nA1,\"two\nlines\"\nA2,x,y\n"
	_, err := Decode(strings.NewReader(input))
	if !errors.Is(err, ErrInvalidCSV) {
		t.Fatalf("Decode() error = %v, want ErrInvalidCSV", err)
	}
	if !strings.Contains(err.Error(), "line 4: expected 2 fields, got 3") {
		t.Errorf("Decode() error = %q, want physical line 4", err)
	}
}

func TestDecode_SkipsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("order_id\nA1\n")...)
	tbl, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !tbl.HasColumn(ColOrderID) {
		t.Errorf("Header = %q, BOM should be stripped", tbl.Header)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	tbl, err := Decode(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, tbl); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.String() != sampleCSV {
		t.Errorf("Encode() output differs from input:\n%s", buf.String())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Load() error = %v, want ErrSourceNotFound", err)
	}
}

func TestSave_CreatesDirectories(t *testing.T) {
	tbl, err := Decode(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
	if err := Save(path, tbl); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != sampleCSV {
		t.Errorf("saved file differs from input:\n%s", data)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Len() != tbl.Len() {
		t.Errorf("reloaded Len() = %d, want %d", reloaded.Len(), tbl.Len())
	}
}
