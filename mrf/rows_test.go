package mrf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/symbol"
)

func TestRowScheme_String(t *testing.T) {
	require.Equal(t, "letters", LetterRows.String())
	require.Equal(t, "numbered", NumberedRows.String())
	require.Equal(t, "RowScheme(7)", RowScheme(7).String())
}

func TestParseRowScheme(t *testing.T) {
	for in, want := range map[string]RowScheme{
		"letters":    LetterRows,
		"Letter":     LetterRows,
		" numbered ": NumberedRows,
		"NUMBERS":    NumberedRows,
	} {
		got, err := ParseRowScheme(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseRowScheme("roman")
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestLetterRows(t *testing.T) {
	labels, err := LetterRows.Labels(3)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, labels)

	labels, err = LetterRows.Labels(26)
	require.NoError(t, err)
	require.Equal(t, "z", labels[25])

	_, err = LetterRows.Labels(27)
	require.ErrorIs(t, err, ErrTooManyRows)
	_, err = LetterRows.Labels(0)
	require.ErrorIs(t, err, ErrBadDimension)

	k, err := LetterRows.Key(1, 2)
	require.NoError(t, err)
	require.Equal(t, symbol.MustNew('b', 3), k)
	require.Equal(t, "b3", k.String())

	_, err = LetterRows.Key(26, 0)
	require.ErrorIs(t, err, ErrTooManyRows)
	_, err = LetterRows.Key(0, -1)
	require.ErrorIs(t, err, ErrBadDimension)
}

func TestNumberedRows(t *testing.T) {
	labels, err := NumberedRows.Labels(12)
	require.NoError(t, err)
	require.Equal(t, "00", labels[0])
	require.Equal(t, "11", labels[11])

	labels, err = NumberedRows.Labels(1)
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, labels)

	k, err := NumberedRows.Key(40, 0)
	require.NoError(t, err)
	require.Equal(t, byte('r'), k.Chr())
	require.Equal(t, uint64(40)<<numberedColBits|1, k.Index())

	_, err = NumberedRows.Key(0, maxNumbered)
	require.ErrorIs(t, err, ErrGridTooLarge)
}

func TestKeyGrid_Unique(t *testing.T) {
	for _, s := range []RowScheme{LetterRows, NumberedRows} {
		keys, err := s.keyGrid(Grid{Rows: 4, Cols: 6})
		require.NoError(t, err)
		seen := make(map[symbol.Key]bool)
		for _, row := range keys {
			for _, k := range row {
				require.False(t, seen[k], "%s: duplicate key %v", s, k)
				seen[k] = true
			}
		}
		require.Len(t, seen, 24)
	}
	_, err := RowScheme(5).keyGrid(Grid{Rows: 1, Cols: 1})
	require.ErrorIs(t, err, ErrUnknownScheme)
}
