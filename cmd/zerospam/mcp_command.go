package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"zerospam/internal/logging"
	"zerospam/internal/report"
	"zerospam/internal/spamscore"
)

const mcpInstructions = "This server scores batches of email bodies for bulk spam. " +
	"Pass the whole batch at once: each message is scored by its average similarity to the others, " +
	"so at least two messages are required."

func newMCPCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the scorer as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseLogger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(baseLogger, "mcp")
			server := newMCPServer(logger)

			logger.Info("mcp server starting", logging.String("transport", "stdio"))
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}

func newMCPServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "zerospam",
		Version: version,
	}, &mcp.ServerOptions{Instructions: mcpInstructions})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "spam_probabilities",
		Description: "Score each mail body by its average cosine similarity to the rest of the batch (0 unique, 1 identical to all others)",
	}, spamProbabilitiesHandler(logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "similarity_matrix",
		Description: "Return the symmetric pairwise cosine similarity matrix of a batch of mail bodies",
	}, similarityMatrixHandler(logger))

	return server
}

type mailsArgs struct {
	Mails any `json:"mails,omitempty" jsonschema:"Array of mail text bodies, at least two"`
}

// mailsInput returns the mails argument, or spamscore.Absent when the call
// carried no "mails" key at all.
func mailsInput(req *mcp.CallToolRequest, args mailsArgs) any {
	if args.Mails != nil || req == nil || req.Params == nil {
		return args.Mails
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(req.Params.Arguments, &raw); err != nil {
		return spamscore.Absent
	}
	if _, ok := raw["mails"]; !ok {
		return spamscore.Absent
	}
	return nil
}

type probabilitiesResult struct {
	Probabilities []report.Score `json:"probabilities"`
}

type matrixResult struct {
	Matrix [][]report.Score `json:"matrix"`
}

func spamProbabilitiesHandler(logger *slog.Logger) mcp.ToolHandlerFor[mailsArgs, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args mailsArgs) (*mcp.CallToolResult, any, error) {
		scores, err := spamscore.ProbabilitiesOf(mailsInput(req, args))
		if err != nil {
			logger.Warn("spam_probabilities rejected input", logging.Error(err))
			return nil, nil, err
		}
		result := probabilitiesResult{Probabilities: make([]report.Score, len(scores))}
		for i, s := range scores {
			result.Probabilities[i] = report.Score(s)
		}
		logger.Debug("spam_probabilities scored", logging.Int("messages", len(scores)))
		return textResult(result)
	}
}

func similarityMatrixHandler(logger *slog.Logger) mcp.ToolHandlerFor[mailsArgs, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args mailsArgs) (*mcp.CallToolResult, any, error) {
		mails, err := spamscore.MailsFromAny(mailsInput(req, args))
		if err != nil {
			return nil, nil, err
		}
		analysis, err := spamscore.Analyze(mails)
		if err != nil {
			logger.Warn("similarity_matrix rejected input", logging.Error(err))
			return nil, nil, err
		}
		out := buildMatrixOutput(nil, analysis.Matrix)
		return textResult(matrixResult{Matrix: out.Matrix})
	}
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(resultJSON)},
		},
	}, nil, nil
}
