// Package diag defines the diagnostic model shared by the scanner and parser.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Code: compact numeric identifier (see codes.go). Its Title is the fixed
//     short message of the kind, e.g. "Unexpected token".
//   - Description: optional free-text elaboration, e.g. "Expected ';'".
//   - Symbol: the offending symbol, or nil.
//   - Depth: grammar nesting depth at the moment of reporting. It is used for
//     ordering and indentation only and never for control flow.
//   - ShowEndOfWord / ShowCursor: caret placement hints for renderers.
//
// Errors is the collector of one parse session. It is append-only while
// parsing and read-only while rendering. Sorted orders diagnostics by
// (line, depth) for display.
//
// # Scope
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
