// Package config loads, normalizes, and validates zerospam configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ZEROSPAM_LOG_LEVEL. The Config type centralizes every knob the CLI and the
// MCP server need: the flagging threshold, input source defaults, report
// output, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
