// SPDX-License-Identifier: MIT

// Package symbol builds opaque integer keys that address factor-graph variables.
//
// What:
//
//   - A Key packs a single character (the "symbol") into the top 8 bits and
//     an index into the low 56 bits of a uint64: key = chr<<56 | index.
//   - Keys print as "<chr><index>" (e.g. "a1", "x42") when the character is
//     printable ASCII, and as a plain decimal integer otherwise.
//   - Parse is the inverse of String for symbol keys.
//
// Why:
//
//   - Grid and trajectory problems label variables by (row, column) or
//     (kind, timestep). Keys are unique per pair and order by symbol first,
//     index second.
//
// Errors:
//
//   - ErrIndexOverflow: index does not fit into 56 bits.
//   - ErrMalformed: Parse input is not "<printable chr><decimal index>".
//
// Complexity: all operations are O(1) except Parse/String, which are
// O(number of decimal digits).
package symbol
