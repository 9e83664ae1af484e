package sheet

// Table is the structural view of a worksheet: header names and trimmed cell
// text. An empty string is a null cell.
type Table struct {
	Columns  []string
	Rows     []Row
	Date1904 bool
}

// Row is one data row. Cells are aligned with Table.Columns.
type Row struct {
	Number int // 1-based worksheet row; the header is row 1
	Cells  []string
	// TextCells marks cells stored as strings whose text reads as a number.
	// Nil when the row has none.
	TextCells []bool
}

// ColumnIndex returns the position of the first column called name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Blank reports whether every cell of the row is empty.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if c != "" {
			return false
		}
	}
	return true
}

// IsText reports whether cell i was stored as a numeric-looking string.
func (r Row) IsText(i int) bool {
	return i < len(r.TextCells) && r.TextCells[i]
}
