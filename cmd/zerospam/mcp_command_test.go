package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"zerospam/internal/logging"
	"zerospam/internal/spamscore"
)

func decodeText(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), v); err != nil {
		t.Fatalf("decode %q: %v", text.Text, err)
	}
}

func TestSpamProbabilitiesTool(t *testing.T) {
	handler := spamProbabilitiesHandler(logging.NewNop())

	res, _, err := handler(context.Background(), nil, mailsArgs{Mails: []any{"hello", "hello", "hello", "hello"}})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	var got struct {
		Probabilities []float64 `json:"probabilities"`
	}
	decodeText(t, res, &got)
	for i, p := range got.Probabilities {
		if p != 1 {
			t.Fatalf("probability %d = %v, want 1", i, p)
		}
	}
	if len(got.Probabilities) != 4 {
		t.Fatalf("len = %d", len(got.Probabilities))
	}
}

func TestSpamProbabilitiesToolValidation(t *testing.T) {
	handler := spamProbabilitiesHandler(logging.NewNop())

	_, _, err := handler(context.Background(), nil, mailsArgs{Mails: map[string]any{}})
	if !errors.Is(err, spamscore.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if err.Error() != "mails should be an array and should contain text bodies. Found object" {
		t.Fatalf("message = %q", err.Error())
	}

	_, _, err = handler(context.Background(), nil, mailsArgs{Mails: []any{"one"}})
	if err == nil || err.Error() != "There should be at least 2 mails in the array called mails." {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSpamProbabilitiesToolMissingVersusNull(t *testing.T) {
	handler := spamProbabilitiesHandler(logging.NewNop())
	tests := []struct {
		name      string
		arguments string
		found     string
	}{
		{"missing key", `{}`, "undefined"},
		{"no arguments", ``, "undefined"},
		{"explicit null", `{"mails": null}`, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{
				Name:      "spam_probabilities",
				Arguments: json.RawMessage(tt.arguments),
			}}
			_, _, err := handler(context.Background(), req, mailsArgs{})
			want := "mails should be an array and should contain text bodies. Found " + tt.found
			if err == nil || err.Error() != want {
				t.Fatalf("error = %v, want %q", err, want)
			}
		})
	}
}

func TestSimilarityMatrixTool(t *testing.T) {
	handler := similarityMatrixHandler(logging.NewNop())

	res, _, err := handler(context.Background(), nil, mailsArgs{Mails: []any{"a", "b"}})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	var got struct {
		Matrix [][]float64 `json:"matrix"`
	}
	decodeText(t, res, &got)
	if len(got.Matrix) != 2 || got.Matrix[0][1] != 0 || got.Matrix[1][0] != 0 {
		t.Fatalf("matrix = %v", got.Matrix)
	}
}

func TestNewMCPServer(t *testing.T) {
	if newMCPServer(logging.NewNop()) == nil {
		t.Fatal("expected server")
	}
}
