package orders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrInvalidCSV is returned when the input cannot be parsed as CSV.
	ErrInvalidCSV = errors.New("invalid csv")

	// ErrEmptyFile is returned when the input has no header row.
	ErrEmptyFile = errors.New("empty file")
)

// Load reads an order table from the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Decode reads an order table from CSV data with a header row.
// Header names are matched against the known columns ignoring case; any
// other column is kept as an extra column. Short rows are padded with
// absent values; a row with more cells than the header is rejected.
func Decode(r io.Reader) (*Table, error) {
	reader := csv.NewReader(WrapSource(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidCSV, err)
	}

	cols := make([]Column, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		if h == "" {
			return nil, fmt.Errorf("%w: empty column name at position %d", ErrInvalidCSV, i+1)
		}
		key := strings.ToLower(h)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidCSV, h)
		}
		seen[key] = true
		if c, ok := ParseColumn(h); ok {
			cols[i] = c
		}
	}

	t := &Table{Header: header}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidCSV, line, err)
		}
		if len(record) > len(header) {
			pos, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d",
				ErrInvalidCSV, pos, len(header), len(record))
		}

		var o Order
		for i, name := range header {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			if cols[i] != "" {
				o.Set(cols[i], cell)
				continue
			}
			if o.Extra == nil {
				o.Extra = make(map[string]string)
			}
			o.Extra[name] = cell
		}
		t.Orders = append(t.Orders, o)
	}

	return t, nil
}

// Encode writes the table as CSV with its header row.
func Encode(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Header))
	for i := range t.Orders {
		for j, name := range t.Header {
			record[j] = t.Cell(i, name)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Save writes the table to path, creating parent directories as needed.
func Save(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, t); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
