package cipher

import (
	"math"
	"strings"
	"unicode"

	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// Normalize returns text with every Unicode whitespace character removed.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Dimensions returns the grid size used for a normalized text of n runes.
//
// rows is floor(sqrt(n)) and columns is ceil(sqrt(n)); if rows*columns < n,
// rows is raised to columns. Dimensions(0) is (0, 0).
func Dimensions(n int) (rows, columns int) {
	if n <= 0 {
		return 0, 0
	}
	root := isqrt(n)
	rows, columns = root, root
	if root*root < n {
		columns = root + 1
	}
	if rows*columns < n {
		rows = columns
	}
	return rows, columns
}

// isqrt returns floor(sqrt(n)) for n >= 0, correcting any float rounding.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Grid is a row-major rectangle of runes sized by [Dimensions].
//
// Only the first Len cells (in row-major order) are filled; the rest are
// absent. A Grid is immutable once built.
type Grid struct {
	rows    int
	columns int
	cells   []rune
}

// NewGrid lays out normalized text in a grid. It fails with INVALID_STATE when
// normalized is empty. Whitespace is not stripped here; use [Normalize] first.
func NewGrid(normalized string) (*Grid, error) {
	cells := []rune(normalized)
	if len(cells) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidState, "input contains no non-whitespace characters")
	}
	rows, columns := Dimensions(len(cells))
	return &Grid{rows: rows, columns: columns, cells: cells}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of grid columns.
func (g *Grid) Columns() int { return g.columns }

// Len returns the number of filled cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the rune at (row, col) and whether that cell is filled.
// Out-of-range coordinates report an absent cell.
func (g *Grid) Cell(row, col int) (rune, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		return 0, false
	}
	i := row*g.columns + col
	if i >= len(g.cells) {
		return 0, false
	}
	return g.cells[i], true
}

// RowStrings returns the filled contents of each row, top to bottom.
// Trailing rows may be shorter than Columns, or empty.
func (g *Grid) RowStrings() []string {
	out := make([]string, g.rows)
	for i := 0; i < g.rows; i++ {
		start := min(i*g.columns, len(g.cells))
		end := min(start+g.columns, len(g.cells))
		out[i] = string(g.cells[start:end])
	}
	return out
}

// ReadColumns serializes the grid column-major. Columns are separated by a
// single space and absent cells contribute nothing.
func (g *Grid) ReadColumns() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.columns - 1)

	for col := 0; col < g.columns; col++ {
		if col != 0 {
			b.WriteByte(' ')
		}
		for row := 0; row < g.rows; row++ {
			if r, ok := g.Cell(row, col); ok {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
