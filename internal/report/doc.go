// Package report assembles scoring results into a per-run document.
//
// Build pairs every message with its score, flag and nearest peer; Encode
// renders the document as JSON (NaN scores become null); WriteFile persists
// it atomically while holding an exclusive file lock so concurrent runs that
// target the same path never interleave.
package report
