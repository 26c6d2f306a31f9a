package spamscore

import "math"

// Analysis is the full result of scoring one corpus.
type Analysis struct {
	// Scores holds one average similarity per message, in input order.
	Scores []float64
	// Matrix holds the pairwise similarities the scores were averaged from.
	Matrix *Matrix
}

// Probabilities returns, for each message, its average cosine similarity to
// every other message in mails. Values lie in [0, 1] and can be read as the
// likelihood that the message is bulk spam.
func Probabilities(mails []string) ([]float64, error) {
	analysis, err := Analyze(mails)
	if err != nil {
		return nil, err
	}
	return analysis.Scores, nil
}

// ProbabilitiesOf validates a dynamically typed input, such as a decoded JSON
// document, before scoring it.
func ProbabilitiesOf(input any) ([]float64, error) {
	mails, err := MailsFromAny(input)
	if err != nil {
		return nil, err
	}
	return Probabilities(mails)
}

// MailsFromAny converts a dynamically typed value into a corpus. Only string
// slices and slices whose every element is a string are accepted.
func MailsFromAny(input any) ([]string, error) {
	switch v := input.(type) {
	case []string:
		return v, nil
	case []any:
		mails := make([]string, len(v))
		for i, elem := range v {
			body, ok := elem.(string)
			if !ok {
				return nil, errNotSequence(input)
			}
			mails[i] = body
		}
		return mails, nil
	default:
		return nil, errNotSequence(input)
	}
}

// Analyze validates mails and runs the whole pipeline, returning the scores
// together with the similarity matrix they were derived from.
func Analyze(mails []string) (*Analysis, error) {
	if len(mails) < 2 {
		return nil, errTooFew()
	}

	matrix := BuildMatrix(ExtractFrequencies(mails))
	scores := make([]float64, matrix.Size())
	for i := range scores {
		scores[i] = Average(matrix.Row(i))
	}
	return &Analysis{Scores: scores, Matrix: matrix}, nil
}

// Average sums a similarity row, self-similarity included, and divides by the
// number of other messages.
func Average(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}
	return sum / float64(len(row)-1)
}

// Nearest returns the index of the message most similar to message i and
// their similarity. NaN similarities are ignored; -1 means no candidate.
func (a *Analysis) Nearest(i int) (int, float64) {
	best, bestScore := -1, math.Inf(-1)
	for j := 0; j < a.Matrix.Size(); j++ {
		if j == i {
			continue
		}
		s := a.Matrix.At(i, j)
		if math.IsNaN(s) {
			continue
		}
		if s > bestScore {
			best, bestScore = j, s
		}
	}
	if best < 0 {
		return -1, math.NaN()
	}
	return best, bestScore
}
