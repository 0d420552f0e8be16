// Package instruction contains fundamental types for instruction table rows.
package instruction

// Column names that the line emitters consume. Tables can contain
// additional columns, they are ignored.
const (
	ColumnName           = "name"
	ColumnOperation      = "operation"
	ColumnAddressingMode = "addressingMode"
	ColumnCycles         = "cycles"
)

// MissingValue is the marker substituted into generated lines when a looked
// up column is absent from the table. It matches the marker that the legacy
// generator printed for absent columns, so generated output stays byte
// compatible.
const MissingValue = "None"

// Row represents one instruction definition read from the table.
// Cell values are kept as the verbatim text of the table cell.
type Row struct {
	columns map[string]string
}

// NewRow creates a new row from a column name to cell value mapping.
func NewRow(columns map[string]string) Row {
	return Row{columns: columns}
}

// Lookup returns the value of the named column and whether the column
// is present in the row.
func (r Row) Lookup(column string) (string, bool) {
	value, ok := r.columns[column]
	return value, ok
}

// Value returns the value of the named column, or MissingValue if the
// column is absent.
func (r Row) Value(column string) string {
	value, ok := r.columns[column]
	if !ok {
		return MissingValue
	}
	return value
}

// Table is an ordered sequence of instruction rows, in file order.
type Table struct {
	Columns []string // header columns in file order
	Rows    []Row
}

// HasColumn returns true if the table header contains the named column.
func (t *Table) HasColumn(column string) bool {
	for _, name := range t.Columns {
		if name == column {
			return true
		}
	}
	return false
}
