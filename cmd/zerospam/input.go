package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"zerospam/internal/config"
	"zerospam/internal/logging"
	"zerospam/internal/mailsource"
	"zerospam/internal/spamscore"
)

type inputFlags struct {
	source   string
	query    string
	maxBytes int64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "Input kind: "+strings.Join(config.Sources, ", "))
	cmd.Flags().StringVar(&f.query, "query", "", "SQL query for the sqlite source (first column body, optional second column id)")
	cmd.Flags().Int64Var(&f.maxBytes, "max-message-bytes", 0, "Reject messages larger than this many bytes (0 uses config)")
}

// load reads the batch named by target and scores it.
func (f *inputFlags) load(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, args []string) ([]mailsource.Message, *spamscore.Analysis, error) {
	kind := strings.TrimSpace(f.source)
	if kind == "" {
		kind = cfg.Input.Source
	}
	query := strings.TrimSpace(f.query)
	if query == "" {
		query = cfg.Input.SQLiteQuery
	}
	maxBytes := cfg.Input.MaxMessageBytes
	if f.maxBytes > 0 {
		maxBytes = f.maxBytes
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	msgs, err := mailsource.Load(ctx, kind, target, mailsource.Options{
		MaxMessageBytes: maxBytes,
		Query:           query,
		Stdin:           cmd.InOrStdin(),
		Logger:          logger,
	})
	if err != nil {
		logging.ErrorWithContext(logger, "source load failed", "source_load",
			logging.String(logging.FieldSource, kind),
			logging.String("target", target),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check --source and the target path"),
		)
		return nil, nil, fmt.Errorf("open source: %w", err)
	}

	analysis, err := spamscore.Analyze(mailsource.Bodies(msgs))
	if err != nil {
		return nil, nil, err
	}
	return msgs, analysis, nil
}
