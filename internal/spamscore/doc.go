// Package spamscore estimates, for a batch of message bodies, how likely each
// message is to be bulk spam using nothing but the batch itself.
//
// The pipeline tokenizes every message (internal/textutil), counts term and
// document frequencies across the batch, weights each term by the inverse of
// its document frequency, and computes the pairwise cosine similarity of the
// weighted vectors. A message's score is its average similarity to every
// other message: near-identical bodies sent to many recipients score close to
// 1, unrelated mail scores close to 0.
//
// Every call owns its statistics and similarity matrix outright; nothing is
// cached between calls, so the package is safe for concurrent use.
package spamscore
