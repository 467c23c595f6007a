package report

// Row holds one record keyed by column name. Cells are strings as
// published; date-valued cells become time.Time after cleaning. A missing
// key is a null cell.
type Row map[string]any

// Table is an ordered set of columns with rows keyed by column name.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: make([]Row, 0)}
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// SetColumn assigns value to the named column in every row, appending the
// column if the table does not already declare it.
func (t *Table) SetColumn(name string, value any) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		row[name] = value
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Concat folds tables into one: rows keep their per-table order and the
// overall input order, columns are the first-seen-order union, and rows
// missing a column hold a null cell for it. No deduplication, no sorting.
func Concat(tables ...*Table) *Table {
	out := NewTable(nil)
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				out.Columns = append(out.Columns, c)
			}
		}
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}
