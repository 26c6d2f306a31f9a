package spamscore

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
)

func TestProbabilitiesIdenticalMessages(t *testing.T) {
	got, err := Probabilities([]string{"a a", "a a ", "a a ", " a a"})
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	want := []float64{1, 1, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("Probabilities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("score[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProbabilitiesDisjointMessages(t *testing.T) {
	got, err := Probabilities([]string{"b b ", "a"})
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Fatalf("Probabilities() = %v, want [0 0]", got)
	}
}

func TestProbabilitiesOutlierScoresZero(t *testing.T) {
	got, err := Probabilities([]string{"b b b", "a a a a", "a a a c c c c "})
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	if got[0] != 0 {
		t.Fatalf("outlier score = %v, want 0", got[0])
	}
	if got[1] != got[2] {
		t.Fatalf("paired scores differ: %v vs %v", got[1], got[2])
	}
}

func TestProbabilitiesDivergenceLowersScore(t *testing.T) {
	divergent, err := Probabilities([]string{"b b a a", "a a a a", "a a a b c"})
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	closer, err := Probabilities([]string{"b a a a", "a a a a", "a a a a b"})
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	if divergent[1] >= closer[1] {
		t.Fatalf("expected %v < %v", divergent[1], closer[1])
	}
}

func TestProbabilitiesWhitespaceClasses(t *testing.T) {
	tests := []struct {
		name  string
		mails []string
		want  []float64
	}{
		{"leading byte order mark", []string{"\ufeffhello", "hello"}, []float64{1, 1}},
		{"next line joins words", []string{"hello\u0085world", "hello\u0085world", "hello world"}, []float64{0.5, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Probabilities(tt.mails)
			if err != nil {
				t.Fatalf("Probabilities returned error: %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Probabilities() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestProbabilitiesPreservesOrder(t *testing.T) {
	mails := []string{
		"Cheap pills, order now!",
		"Meeting moved to 3pm tomorrow",
		"Cheap pills order NOW",
		"cheap pills; order now...",
		"Lunch on Friday?",
	}
	got, err := Probabilities(mails)
	if err != nil {
		t.Fatalf("Probabilities returned error: %v", err)
	}
	if len(got) != len(mails) {
		t.Fatalf("got %d scores for %d mails", len(got), len(mails))
	}
	for _, spam := range []int{0, 2, 3} {
		for _, ham := range []int{1, 4} {
			if got[spam] <= got[ham] {
				t.Errorf("score[%d]=%v should exceed score[%d]=%v", spam, got[spam], ham, got[ham])
			}
		}
	}
}

func TestProbabilitiesRejectsTooFew(t *testing.T) {
	for _, mails := range [][]string{nil, {}, {"only one"}} {
		_, err := Probabilities(mails)
		if err == nil {
			t.Fatalf("Probabilities(%q) expected error", mails)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if err.Error() != "There should be at least 2 mails in the array called mails." {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	}
}

func TestProbabilitiesOfRejectsNonSequence(t *testing.T) {
	tests := []struct {
		name  string
		input any
		found string
	}{
		{"object", map[string]any{}, "object"},
		{"null", nil, "object"},
		{"absent", Absent, "undefined"},
		{"string", "just a body", "string"},
		{"number", float64(3), "number"},
		{"boolean", true, "boolean"},
		{"mixed array", []any{"text", float64(1)}, "array containing number"},
		{"go struct", struct{}{}, "struct {}"},
		{"int slice", []int{1, 2}, "array of int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProbabilitiesOf(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			want := "mails should be an array and should contain text bodies. Found " + tt.found
			if err.Error() != want {
				t.Fatalf("error = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestProbabilitiesOfAcceptsDecodedJSON(t *testing.T) {
	got, err := ProbabilitiesOf([]any{"b b ", "a"})
	if err != nil {
		t.Fatalf("ProbabilitiesOf returned error: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Fatalf("ProbabilitiesOf() = %v, want [0 0]", got)
	}

	_, err = ProbabilitiesOf([]any{"single"})
	if !errors.Is(err, ErrInvalidArgument) || !strings.Contains(err.Error(), "at least 2 mails") {
		t.Fatalf("expected too-few error, got %v", err)
	}
}

func TestProbabilitiesConcurrentCallsAreIndependent(t *testing.T) {
	batches := [][]string{
		{"a a", "a a ", "a a ", " a a"},
		{"b b ", "a"},
		{"b b b", "a a a a", "a a a c c c c "},
	}
	want := make([][]float64, len(batches))
	for i, batch := range batches {
		scores, err := Probabilities(batch)
		if err != nil {
			t.Fatalf("Probabilities returned error: %v", err)
		}
		want[i] = scores
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for round := 0; round < 20; round++ {
		for i, batch := range batches {
			wg.Add(1)
			go func(i int, batch []string) {
				defer wg.Done()
				got, err := Probabilities(batch)
				if err != nil {
					errs <- err.Error()
					return
				}
				for k := range got {
					if got[k] != want[i][k] {
						errs <- "score mismatch under concurrency"
						return
					}
				}
			}(i, batch)
		}
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}

func TestAnalyzeNearest(t *testing.T) {
	analysis, err := Analyze([]string{"win a prize now", "weekly report attached", "win a big prize now"})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	peer, sim := analysis.Nearest(0)
	if peer != 2 {
		t.Fatalf("Nearest(0) peer = %d, want 2", peer)
	}
	if sim != analysis.Matrix.At(0, 2) {
		t.Fatalf("Nearest(0) similarity = %v, want %v", sim, analysis.Matrix.At(0, 2))
	}
	if peer, _ := analysis.Nearest(1); peer < 0 {
		t.Fatal("expected a peer for message 1")
	}
}

func TestAverage(t *testing.T) {
	if got := Average([]float64{0, 0.5, 1}); got != 0.75 {
		t.Fatalf("Average() = %v, want 0.75", got)
	}
	if got := Average([]float64{0.2, 0}); math.Abs(got-0.2) > 1e-12 {
		t.Fatalf("Average() = %v, want 0.2", got)
	}
}
