package main

import (
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable(
		[]column{{title: "ID"}, {title: "Score", numeric: true}, {title: "Flagged"}},
		[][]string{{"a.txt", "0.5000", "yes"}, {"b.txt", "0.0000"}},
		nil,
	)

	requireContains(t, out, "Score")
	requireContains(t, out, "Flagged")
	if strings.Contains(out, "FLAGGED") {
		t.Fatalf("header should not be upper-cased:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unhighlighted table should carry no escapes:\n%s", out)
	}
}

func TestRenderTableHighlightsRows(t *testing.T) {
	out := renderTable([]column{{title: "ID"}}, [][]string{{"spam"}, {"ham"}}, map[int]bool{0: true})

	if !strings.Contains(out, "\x1b[31mspam") {
		t.Fatalf("expected red highlight on first row:\n%s", out)
	}
	if strings.Contains(out, "\x1b[31mham") {
		t.Fatalf("second row should not be highlighted:\n%s", out)
	}
}

func TestRenderTableWithoutColumns(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
