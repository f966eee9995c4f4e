package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter config.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				dir = args[0]
			}
			dir = filepath.Clean(dir)

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			cfgPath := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("config already exists: %s", cfgPath)
			}

			if err := os.WriteFile(cfgPath, []byte(configExample), 0o644); err != nil {
				return err
			}

			fmt.Printf("initialized %s\n", cfgPath)
			return nil
		},
	}

	return cmd
}

const configExample = `# mediaintel configuration.
# Every key can also be set via environment (MEDIAINTEL_LLM_API_KEY, ...)
# or overridden with command-line flags.

llm:
  endpoint: "https://openrouter.ai/api/v1"
  api_key: ""
  model: "openai/gpt-4o-mini"
  request_timeout: "90s"

logging:
  level: "info"     # debug|info|warn|error
  format: "text"    # text|json
  add_source: false
`
