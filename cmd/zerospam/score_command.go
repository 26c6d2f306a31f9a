package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zerospam/internal/logging"
	"zerospam/internal/report"
	"zerospam/internal/textutil"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var (
		input     inputFlags
		format    string
		threshold float64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "score [target]",
		Short: "Score each message by its average similarity to the rest of the batch",
		Long: "Score loads a batch of messages and prints, for each one, the average cosine\n" +
			"similarity of its TF/DF weighted term vector to every other message. Messages\n" +
			"at or above the threshold are flagged as likely bulk spam.\n\n" +
			"The target is a directory, mbox, JSON or SQLite file depending on --source;\n" +
			"json and lines read stdin when it is omitted or '-'.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			baseLogger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			outFormat, err := resolveFormat(format, cfg.Output.Format)
			if err != nil {
				return err
			}
			limit := cfg.Scoring.Threshold
			if cmd.Flags().Changed("threshold") {
				if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
					return fmt.Errorf("threshold must be between 0 and 1, got %v", threshold)
				}
				limit = threshold
			}
			reportPath := textutil.Ternary(strings.TrimSpace(output) != "", strings.TrimSpace(output), cfg.Output.ReportPath)

			runID := report.NewRunID()
			runCtx := logging.WithRunID(cmd.Context(), runID)
			logger := logging.NewComponentLogger(logging.WithContext(runCtx, baseLogger), "score")

			started := time.Now()
			msgs, analysis, err := input.load(runCtx, cmd, cfg, logger, args)
			if err != nil {
				return err
			}
			rep := report.Build(runID, msgs, analysis, limit)

			logger.Info("batch scored",
				logging.Int("messages", rep.Summary.Messages),
				logging.Int("flagged", rep.Summary.Flagged),
				logging.Float64("threshold", limit),
				logging.Duration("elapsed", time.Since(started)),
			)

			if reportPath != "" {
				if err := report.WriteFile(runCtx, reportPath, rep); err != nil {
					return err
				}
				logger.Info("report written", logging.String("path", reportPath))
			}

			if outFormat == formatJSON {
				return writeJSON(cmd, rep)
			}
			renderScoreTable(cmd, rep, cfg.Output.Precision)
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table or json")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Flag messages scoring at or above this value (0-1)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the JSON report to this path")
	return cmd
}

func renderScoreTable(cmd *cobra.Command, rep report.Report, precision int) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(rep.Entries))
	highlight := make(map[int]bool)
	for i, entry := range rep.Entries {
		nearest := "-"
		if entry.NearestIndex >= 0 {
			nearest = fmt.Sprintf("%s (%s)", entry.NearestID, entry.NearestSimilarity.Format(precision))
		}
		rows = append(rows, []string{
			strconv.Itoa(entry.Index),
			entry.ID,
			entry.Score.Format(precision),
			textutil.Ternary(entry.Flagged, "yes", "no"),
			nearest,
		})
		if colorize && entry.Flagged {
			highlight[i] = true
		}
	}

	fmt.Fprint(out, renderTable(
		[]column{
			{title: "#", numeric: true},
			{title: "ID"},
			{title: "Score", numeric: true},
			{title: "Flagged"},
			{title: "Nearest"},
		},
		rows,
		highlight,
	))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d messages, %d flagged at threshold %s\n",
		rep.Summary.Messages,
		rep.Summary.Flagged,
		strconv.FormatFloat(rep.Threshold, 'f', -1, 64),
	)
}
