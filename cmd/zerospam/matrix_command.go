package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zerospam/internal/logging"
	"zerospam/internal/mailsource"
	"zerospam/internal/report"
	"zerospam/internal/spamscore"
)

type matrixOutput struct {
	IDs    []string         `json:"ids"`
	Matrix [][]report.Score `json:"matrix"`
}

func newMatrixCommand(ctx *commandContext) *cobra.Command {
	var (
		input  inputFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "matrix [target]",
		Short: "Print the pairwise similarity matrix of a batch",
		Args:  cobra.MaximumNArgs(1),
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

			runCtx := logging.WithRunID(cmd.Context(), report.NewRunID())
			logger := logging.NewComponentLogger(logging.WithContext(runCtx, baseLogger), "matrix")

			msgs, analysis, err := input.load(runCtx, cmd, cfg, logger, args)
			if err != nil {
				return err
			}
			logger.Debug("matrix built", logging.Int("size", analysis.Matrix.Size()))

			result := buildMatrixOutput(msgs, analysis.Matrix)
			if outFormat == formatJSON {
				return writeJSON(cmd, result)
			}

			columns := []column{{title: ""}}
			for _, id := range result.IDs {
				columns = append(columns, column{title: id, numeric: true})
			}
			rows := make([][]string, len(result.Matrix))
			for i, values := range result.Matrix {
				row := make([]string, 0, len(values)+1)
				row = append(row, result.IDs[i])
				for _, v := range values {
					row = append(row, v.Format(cfg.Output.Precision))
				}
				rows[i] = row
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows, nil))
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table or json")
	return cmd
}

func buildMatrixOutput(msgs []mailsource.Message, m *spamscore.Matrix) matrixOutput {
	out := matrixOutput{
		IDs:    make([]string, m.Size()),
		Matrix: make([][]report.Score, m.Size()),
	}
	for i := 0; i < m.Size(); i++ {
		if i < len(msgs) {
			out.IDs[i] = msgs[i].ID
		}
		row := m.Row(i)
		scores := make([]report.Score, len(row))
		for j, v := range row {
			scores[j] = report.Score(v)
		}
		out.Matrix[i] = scores
	}
	return out
}
