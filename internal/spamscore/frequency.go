package spamscore

import "zerospam/internal/textutil"

// Frequencies holds the term statistics of one corpus.
type Frequencies struct {
	// DF maps a token to the number of messages containing it at least once.
	DF map[string]int
	// TF holds one token->count map per message, in corpus order.
	TF []map[string]int
}

// ExtractFrequencies tokenizes every message and counts term and document
// frequencies. DF counts messages, never occurrences.
func ExtractFrequencies(corpus []string) Frequencies {
	freq := Frequencies{
		DF: make(map[string]int),
		TF: make([]map[string]int, len(corpus)),
	}
	for i, body := range corpus {
		tf := textutil.TermFrequency(textutil.Tokenize(body))
		for token := range tf {
			freq.DF[token]++
		}
		freq.TF[i] = tf
	}
	return freq
}

// Len returns the number of messages the statistics were built from.
func (f Frequencies) Len() int {
	return len(f.TF)
}

// Vector returns the weighted vector of message i.
func (f Frequencies) Vector(i int) map[string]float64 {
	return Weighted(f.TF[i], f.DF)
}
