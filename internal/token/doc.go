// Package token defines the vocabulary of the circuit definition language.
// Invariants:
//   - Every reserved word, operator, device type and D-type pin name has its
//     own Kind; there is no generic "keyword" kind.
//   - Reserved lists the reserved kinds in a fixed order. The name table
//     interns them in that order, so reserved name ids never change.
//   - Symbol positions are 0-based and point at the first character of the
//     token.
package token
