package report

import (
	"math"
	"time"

	"github.com/google/uuid"

	"zerospam/internal/mailsource"
	"zerospam/internal/spamscore"
)

// Entry describes one scored message.
type Entry struct {
	Index             int    `json:"index"`
	ID                string `json:"id"`
	Origin            string `json:"origin,omitempty"`
	Score             Score  `json:"score"`
	Flagged           bool   `json:"flagged"`
	NearestIndex      int    `json:"nearest_index"`
	NearestID         string `json:"nearest_id,omitempty"`
	NearestSimilarity Score  `json:"nearest_similarity"`
}

// Summary aggregates a run.
type Summary struct {
	Messages  int   `json:"messages"`
	Flagged   int   `json:"flagged"`
	MaxScore  Score `json:"max_score"`
	MeanScore Score `json:"mean_score"`
}

// Report is the full output of one scoring run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Threshold   float64   `json:"threshold"`
	Summary     Summary   `json:"summary"`
	Entries     []Entry   `json:"messages"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Build combines loaded messages with their analysis. msgs and
// analysis.Scores must be aligned; messages past the shorter of the two are
// ignored.
func Build(runID string, msgs []mailsource.Message, analysis *spamscore.Analysis, threshold float64) Report {
	r := Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Threshold:   threshold,
	}
	if analysis == nil {
		return r
	}

	n := min(len(msgs), len(analysis.Scores))
	r.Entries = make([]Entry, 0, n)

	maxScore := math.NaN()
	var sum float64
	var counted int
	for i := 0; i < n; i++ {
		score := analysis.Scores[i]
		nearest, similarity := analysis.Nearest(i)
		entry := Entry{
			Index:             i,
			ID:                msgs[i].ID,
			Origin:            msgs[i].Origin,
			Score:             Score(score),
			Flagged:           score >= threshold,
			NearestIndex:      nearest,
			NearestSimilarity: Score(similarity),
		}
		if nearest >= 0 && nearest < n {
			entry.NearestID = msgs[nearest].ID
		}
		r.Entries = append(r.Entries, entry)

		if entry.Flagged {
			r.Summary.Flagged++
		}
		if math.IsNaN(score) {
			continue
		}
		if math.IsNaN(maxScore) || score > maxScore {
			maxScore = score
		}
		sum += score
		counted++
	}

	r.Summary.Messages = n
	r.Summary.MaxScore = Score(maxScore)
	if counted > 0 {
		r.Summary.MeanScore = Score(sum / float64(counted))
	} else {
		r.Summary.MeanScore = Score(math.NaN())
	}
	return r
}
