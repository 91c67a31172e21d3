// Package orders provides the in-memory order table that every cleaning step
// reads and writes.
//
// An [Order] is a fixed-schema record with one field per known column. Text
// columns use pgtype.Text, the typed columns use pgtype.Date, pgtype.Int8 and
// pgtype.Float8. A field with Valid=false is absent; there is no sentinel
// value for missing data.
//
// Typed columns arrive as raw text. Until the owning cleaning step parses it,
// that text lives in [Order.Source]; once parsed the source is cleared and the
// typed field holds either a valid value or nothing. This keeps a typed field
// from ever holding a half-normalized value.
//
// Columns that the table does not know about are carried through untouched
// in [Order.Extra] and written back in their original header position.
//
// # Loading and Saving
//
// [Load] and [Decode] read a delimited file with a header row. The reader
// skips a UTF-8 BOM and replaces invalid UTF-8 before parsing. [Save] and
// [Encode] write the table back in the same layout, with absent values as
// empty cells. [Save] creates the output directory when needed.
package orders
