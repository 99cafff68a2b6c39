package model

import (
	"fmt"
	"strings"
)

// Table represents a detected table candidate with cells organized in rows
// and columns.
type Table struct {
	Rows       [][]Cell
	Rect       Rect
	HasGrid    bool    // Whether the table has visible ruling lines
	Confidence float64 // Detection confidence (0-1)
}

// Cell represents a table cell.
type Cell struct {
	Text string
	Rect Rect
}

// NewTable creates a new table with given dimensions.
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows:       make([][]Cell, rows),
		Confidence: 1.0,
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given row and column (0-indexed).
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position.
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// GetText returns the cell grid as tab-separated rows.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ContainsDigit reports whether any cell text contains a digit character.
// Candidates without a single digit are usually misclassified prose blocks.
func (t *Table) ContainsDigit() bool {
	for _, row := range t.Rows {
		for _, cell := range row {
			for _, r := range cell.Text {
				if r >= '0' && r <= '9' {
					return true
				}
			}
		}
	}
	return false
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// TableRecord is the per-page record emitted for an accepted table candidate.
type TableRecord struct {
	PageNumber int
	Index      int    // 1-based index among the candidates of the winning attempt
	Strategy   string // Detection strategy that produced the candidate
	RowCount   int
	ColCount   int
	CSVPath    string // Serialized artifact path, empty when saving is off or failed
}
