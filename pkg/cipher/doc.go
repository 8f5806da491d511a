// Package cipher implements the "square code" transposition cipher.
//
// # Overview
//
// Encryption removes every whitespace character from the input, writes the
// remaining characters row by row into a rectangle that is as close to square
// as possible, and then reads the rectangle back column by column. Columns are
// separated by a single space in the output.
//
// For "chill out" the normalized text is "chillout" (8 characters). The grid
// has 3 columns and, after promotion, 3 rows:
//
//	c h i
//	l l o
//	u t
//
// Reading down each column yields "clu hlt io".
//
// # Grid Dimensions
//
// For a normalized length L, [Dimensions] returns rows = floor(sqrt(L)) and
// columns = ceil(sqrt(L)); when that rectangle is too small the row count is
// promoted to the column count. The result always satisfies
// rows*columns >= L and columns >= rows.
//
// # Unfilled Cells
//
// Cells past the end of the text are absent rather than holding a placeholder
// rune, so any character (including U+0000) round-trips through the grid.
// [Grid.Cell] reports presence explicitly.
//
// # Concurrency
//
// All functions are pure and keep their state on the stack; they may be
// called from any number of goroutines. Events are reported through the
// cipher hooks in the observability package.
package cipher
