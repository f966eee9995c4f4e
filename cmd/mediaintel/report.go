package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/taniiarch/mediaintel/internal/logutil"
	"github.com/taniiarch/mediaintel/report"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate a media-mentions CSV and fetch insights per section",
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath := strings.TrimSpace(flagOrViperString(cmd, "csv", "report.csv"))
			if csvPath == "" {
				return fmt.Errorf("missing --csv")
			}

			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			mentions, err := report.Load(csvPath)
			if err != nil {
				return err
			}
			if len(mentions) == 0 {
				return fmt.Errorf("no usable rows in %s", csvPath)
			}

			client := llmClientFromCmd(cmd)
			model := strings.TrimSpace(flagOrViperString(cmd, "model", "llm.model"))

			timeout := flagOrViperDuration(cmd, "timeout", "timeout")
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			rep := report.Run(ctx, client, mentions, report.Options{
				Source: csvPath,
				Model:  model,
				Logger: logger,
			})

			if err := report.Write(cmd.OutOrStdout(), rep); err != nil {
				return err
			}

			outPath := strings.TrimSpace(flagOrViperString(cmd, "out", "report.out"))
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(report.Markdown(rep)), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				logger.Info("report_written", "path", outPath)
			}
			return nil
		},
	}

	cmd.Flags().String("csv", "", "Media-mentions CSV file (required).")
	cmd.Flags().String("out", "", "Optional markdown report output path.")
	addLLMFlags(cmd)
	cmd.Flags().Duration("timeout", 10*time.Minute, "Overall timeout.")

	return cmd
}
