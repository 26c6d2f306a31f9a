// Package main hosts the zerospam CLI entrypoint and command graph.
//
// The Cobra-based command tree loads a batch of messages from one of the
// mailsource adapters, scores it with spamscore, and renders the result as a
// table, JSON, or a persisted report. The same pipeline is exposed to MCP
// clients through the mcp subcommand. Configuration resolution and logger
// setup are centralized in commandContext so subcommands only deal with
// flags and presentation.
package main
