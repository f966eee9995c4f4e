package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/taniiarch/mediaintel/insight"
	"github.com/taniiarch/mediaintel/internal/logutil"
)

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Send one prompt and print the model's answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(flagOrViperString(cmd, "prompt", "prompt"))
			if prompt == "" {
				data, err := os.ReadFile("/dev/stdin")
				if err == nil {
					prompt = strings.TrimSpace(string(data))
				}
			}
			if prompt == "" {
				return fmt.Errorf("missing --prompt (or stdin)")
			}

			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			client := llmClientFromCmd(cmd)
			model := strings.TrimSpace(flagOrViperString(cmd, "model", "llm.model"))

			timeout := flagOrViperDuration(cmd, "timeout", "timeout")
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			// The dispatcher captures every failure into its return string;
			// whatever happened, the command prints one line and exits 0.
			out := insight.Fetch(ctx, client, prompt, insight.Options{Model: model, Logger: logger})
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("prompt", "", "Prompt to send (if empty, reads from stdin).")
	addLLMFlags(cmd)
	cmd.Flags().Duration("timeout", 2*time.Minute, "Overall timeout.")

	return cmd
}
