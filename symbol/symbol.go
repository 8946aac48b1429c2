// SPDX-License-Identifier: MIT
// Package: factorgraph/symbol
//
// symbol.go - Key packing, printing and parsing.
//
// Contract:
//   • key = chr<<56 | index; index must fit in 56 bits (else ErrIndexOverflow).
//   • String and Parse round-trip for printable symbol keys.
//   • Only MustNew panics.

package symbol

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Sentinel errors for key construction and parsing.
var (
	// ErrIndexOverflow indicates an index that does not fit into the 56 index bits.
	ErrIndexOverflow = errors.New("symbol: index exceeds 56 bits")
	// ErrMalformed indicates a string that is not "<chr><index>".
	ErrMalformed = errors.New("symbol: malformed key string")
)

const (
	chrBits   = 8
	indexBits = 64 - chrBits

	// MaxIndex is the largest index a Key can carry.
	MaxIndex uint64 = 1<<indexBits - 1

	chrMask   = uint64(0xFF) << indexBits
	indexMask = MaxIndex
)

// Key is an opaque variable identifier. The zero Key is valid (chr 0, index 0).
type Key uint64

// New packs (chr, index) into a Key.
// Returns ErrIndexOverflow when index > MaxIndex.
// Complexity: O(1).
func New(chr byte, index uint64) (Key, error) {
	if index > MaxIndex {
		return 0, fmt.Errorf("New(%q, %d): %w", chr, index, ErrIndexOverflow)
	}
	return Key(uint64(chr)<<indexBits | index), nil
}

// MustNew is New for indices known to be in range; it panics otherwise.
func MustNew(chr byte, index uint64) Key {
	k, err := New(chr, index)
	if err != nil {
		panic(err)
	}
	return k
}

// Chr returns the symbol character stored in the top 8 bits.
func (k Key) Chr() byte { return byte((uint64(k) & chrMask) >> indexBits) }

// Index returns the 56-bit index.
func (k Key) Index() uint64 { return uint64(k) & indexMask }

// IsSymbol reports whether the key carries a printable, non-digit ASCII
// character and therefore renders as "<chr><index>".
func (k Key) IsSymbol() bool {
	c := k.Chr()
	return c > ' ' && c < 0x7F && !isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// String renders "a1"-style text for symbol keys and plain decimal otherwise.
func (k Key) String() string {
	if !k.IsSymbol() {
		return strconv.FormatUint(uint64(k), 10)
	}
	return string(k.Chr()) + strconv.FormatUint(k.Index(), 10)
}

// Parse converts "<chr><index>" back into a Key.
// A purely numeric string is accepted as a raw key value.
// Complexity: O(len(s)).
func Parse(s string) (Key, error) {
	if s == "" {
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}
	c := s[0]
	if isDigit(c) {
		raw, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
		}
		return Key(raw), nil
	}
	if c <= ' ' || c >= 0x7F || len(s) < 2 {
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}
	idx, err := strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}

	return New(c, idx)
}

// SortKeys sorts keys ascending in place (symbol first, then index).
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
