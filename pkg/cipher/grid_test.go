package cipher

import (
	"reflect"
	"testing"

	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no whitespace", "hello", "hello"},
		{"spaces", "chill out", "chillout"},
		{"tabs and newlines", "a\tb\nc\r\nd", "abcd"},
		{"unicode whitespace", "a b c　d", "abcd"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
		{"non-ascii kept", "héllo wörld", "héllowörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		n        int
		wantRows int
		wantCols int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2}, // 1*2 < 3, promoted
		{4, 2, 2},
		{5, 2, 3},
		{6, 2, 3},
		{7, 3, 3}, // 2*3 < 7, promoted
		{8, 3, 3},
		{9, 3, 3},
		{10, 3, 4},
		{54, 7, 8},
		{57, 8, 8}, // 7*8 < 57, promoted
		{64, 8, 8},
		{1000000, 1000, 1000},
		{1000001, 1000, 1001},
	}

	for _, tt := range tests {
		rows, cols := Dimensions(tt.n)
		if rows != tt.wantRows || cols != tt.wantCols {
			t.Errorf("Dimensions(%d) = (%d, %d), want (%d, %d)", tt.n, rows, cols, tt.wantRows, tt.wantCols)
		}
	}
}

func TestDimensionsInvariants(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		rows, cols := Dimensions(n)
		if rows*cols < n {
			t.Fatalf("Dimensions(%d) = (%d, %d): capacity %d < %d", n, rows, cols, rows*cols, n)
		}
		if cols < rows {
			t.Fatalf("Dimensions(%d) = (%d, %d): columns < rows", n, rows, cols)
		}
		if cols-rows > 1 {
			t.Fatalf("Dimensions(%d) = (%d, %d): not near-square", n, rows, cols)
		}
	}
}

func TestNewGridEmpty(t *testing.T) {
	g, err := NewGrid("")
	if err == nil {
		t.Fatal("NewGrid(\"\") should fail")
	}
	if g != nil {
		t.Error("NewGrid(\"\") should return nil grid")
	}
	if !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidState)
	}
}

func TestGridCell(t *testing.T) {
	g, err := NewGrid("chillout")
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}

	if g.Rows() != 3 || g.Columns() != 3 || g.Len() != 8 {
		t.Fatalf("grid = %dx%d len %d, want 3x3 len 8", g.Rows(), g.Columns(), g.Len())
	}

	if r, ok := g.Cell(0, 0); !ok || r != 'c' {
		t.Errorf("Cell(0,0) = (%q, %v), want ('c', true)", r, ok)
	}
	if r, ok := g.Cell(2, 1); !ok || r != 't' {
		t.Errorf("Cell(2,1) = (%q, %v), want ('t', true)", r, ok)
	}
	if _, ok := g.Cell(2, 2); ok {
		t.Error("Cell(2,2) should be absent")
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := g.Cell(pos[0], pos[1]); ok {
			t.Errorf("Cell(%d,%d) should be absent", pos[0], pos[1])
		}
	}
}

func TestGridRowStrings(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"hello", []string{"hel", "lo"}},
		{"chillout", []string{"chi", "llo", "ut"}},
		{"a", []string{"a"}},
		{"abc", []string{"ab", "c"}},
		{"abcdefg", []string{"abc", "def", "g"}},
	}

	for _, tt := range tests {
		g, err := NewGrid(tt.input)
		if err != nil {
			t.Fatalf("NewGrid(%q) error: %v", tt.input, err)
		}
		if got := g.RowStrings(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NewGrid(%q).RowStrings() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGridNULIsAFilledCell(t *testing.T) {
	// U+0000 is real content, not a marker for an empty cell.
	g, err := NewGrid("a\x00b\x00c")
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	if r, ok := g.Cell(0, 1); !ok || r != 0 {
		t.Errorf("Cell(0,1) = (%q, %v), want (NUL, true)", r, ok)
	}
	if got, want := g.ReadColumns(), "a\x00 \x00c b"; got != want {
		t.Errorf("ReadColumns() = %q, want %q", got, want)
	}
}
