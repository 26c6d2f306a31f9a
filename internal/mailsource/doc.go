// Package mailsource turns caller-supplied inputs into an ordered batch of
// message bodies ready for scoring.
//
// Each adapter implements Source: a directory of files (plain text or .eml),
// an mbox file, a JSON array, newline-delimited text, or rows of a read-only
// SQLite query. Open selects an adapter by kind and Bodies projects the loaded
// messages onto the corpus consumed by spamscore. Order is always preserved so
// score i belongs to message i.
package mailsource
