// Package textutil normalizes raw message bodies into tokens.
//
// Tokenization is deliberately simple and must stay stable: scores computed by
// internal/spamscore depend on every message being split with exactly the same
// rules. The process strips a fixed punctuation set, trims surrounding
// whitespace, lowercases, then splits on whitespace runs. There is no stemming
// and no stopword removal.
package textutil
