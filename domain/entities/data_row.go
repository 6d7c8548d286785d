package entities

// DataRow is one row of parameterized test input
type DataRow []string

// Cell returns the value at the zero-based column, or "" past the end of the row
func (r DataRow) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
