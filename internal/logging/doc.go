// Package logging assembles structured slog loggers and formatting helpers used
// across zerospam.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so every line emitted during one scoring
// run carries the run ID. The package also provides a no-op logger for tests
// and library callers that do not want output.
//
// Results are written to stdout by the CLI; loggers default to stderr so the
// two never mix.
package logging
