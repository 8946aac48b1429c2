// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// rows.go - row labelling and key schemes.
//
// Contract:
//   • LetterRows: labels "a".."z", keys symbol.New(label, col+1); ≤ 26 rows.
//   • NumberedRows: zero-padded decimal labels, keys in the 'r' namespace.

package mrf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/factorgraph/symbol"
)

// RowScheme selects how rows are labelled and how cell keys are formed.
type RowScheme int

const (
	// LetterRows labels rows "a", "b", … and keys cell (r,c) as
	// symbol('a'+r, c+1). Limited to 26 rows.
	LetterRows RowScheme = iota
	// NumberedRows labels rows with zero-padded decimals ("00".."11") and
	// keys cell (r,c) as symbol('r', r<<numberedColBits | c+1).
	NumberedRows
)

const (
	maxLetterRows = 26

	// numberedChr is the symbol character shared by all NumberedRows keys.
	numberedChr = 'r'
	// numberedColBits splits the 56-bit key index into row and column parts.
	numberedColBits = 28
	maxNumbered     = 1 << numberedColBits
)

// String returns "letters" or "numbered".
func (s RowScheme) String() string {
	switch s {
	case LetterRows:
		return "letters"
	case NumberedRows:
		return "numbered"
	default:
		return "RowScheme(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseRowScheme accepts "letters" or "numbered" (case-insensitive).
func ParseRowScheme(s string) (RowScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letters", "letter":
		return LetterRows, nil
	case "numbered", "numbers":
		return NumberedRows, nil
	default:
		return 0, fmt.Errorf("ParseRowScheme(%q): %w", s, ErrUnknownScheme)
	}
}

// validate checks the grid fits the scheme.
func (s RowScheme) validate(g Grid) error {
	switch s {
	case LetterRows:
		if g.Rows > maxLetterRows {
			return fmt.Errorf("%s: rows=%d: %w", s, g.Rows, ErrTooManyRows)
		}
	case NumberedRows:
		// Column indices are 1-based, so cols itself must stay below the limit.
		if g.Rows > maxNumbered || g.Cols >= maxNumbered {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", s, g.Rows, g.Cols, ErrGridTooLarge)
		}
	default:
		return fmt.Errorf("%s: %w", s, ErrUnknownScheme)
	}
	return nil
}

// Labels returns one label per row, in row order.
func (s RowScheme) Labels(rows int) ([]string, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%s.Labels(%d): %w", s, rows, ErrBadDimension)
	}
	if err := s.validate(Grid{Rows: rows, Cols: 1}); err != nil {
		return nil, err
	}
	out := make([]string, rows)
	switch s {
	case LetterRows:
		for r := range out {
			out[r] = string(rune('a' + r))
		}
	case NumberedRows:
		width := len(strconv.Itoa(rows - 1))
		for r := range out {
			out[r] = fmt.Sprintf("%0*d", width, r)
		}
	}
	return out, nil
}

// Key returns the variable key of cell (row,col). Columns are 0-based here
// and 1-based in the key index.
func (s RowScheme) Key(row, col int) (symbol.Key, error) {
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("%s.Key(%d,%d): %w", s, row, col, ErrBadDimension)
	}
	if err := s.validate(Grid{Rows: row + 1, Cols: col + 1}); err != nil {
		return 0, err
	}
	switch s {
	case LetterRows:
		return symbol.New(byte('a'+row), uint64(col+1))
	default:
		return symbol.New(numberedChr, uint64(row)<<numberedColBits|uint64(col+1))
	}
}

// keyGrid returns keys[row][col] for every cell of g.
func (s RowScheme) keyGrid(g Grid) ([][]symbol.Key, error) {
	if err := s.validate(g); err != nil {
		return nil, err
	}
	keys := make([][]symbol.Key, g.Rows)
	for r := 0; r < g.Rows; r++ {
		keys[r] = make([]symbol.Key, g.Cols)
		for c := 0; c < g.Cols; c++ {
			k, err := s.Key(r, c)
			if err != nil {
				return nil, err
			}
			keys[r][c] = k
		}
	}
	return keys, nil
}
