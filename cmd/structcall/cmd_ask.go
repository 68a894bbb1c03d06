package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"structcall/internal/llmcli"
)

var schemaPath string

// askCmd runs the primary operation from the shell: prompt in, validated JSON
// object out.
var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask the provider's CLI tool for JSON matching a schema",
	Long: `ask augments the prompt with schema instructions, invokes the resolved
provider CLI, and prints the validated JSON object on stdout.

The schema is a JSON Schema document: field names, types, and a required list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}
		schemaDoc, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		desc, err := llmcli.SchemaFromJSON(schemaDoc)
		if err != nil {
			return err
		}

		client := llmcli.New(
			llmcli.WithProvider(cfg.Provider),
			llmcli.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			llmcli.WithLogger(logger),
		)
		value, err := client.AskRaw(cmd.Context(), llmcli.Request{
			Prompt: strings.Join(args, " "),
			Schema: desc,
		})
		if err != nil {
			return describeFailure(err)
		}

		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&schemaPath, "schema", "", "path to the JSON schema the answer must match")
}

// describeFailure appends the remediation for each failure kind. The kinds
// stay distinct: installing a tool, widening a timeout and tightening a
// prompt are different fixes.
func describeFailure(err error) error {
	var notFound *llmcli.ToolNotFoundError
	var timedOut *llmcli.TimeoutError
	var execFailed *llmcli.ExecutionError
	var noJSON *llmcli.ExtractionError
	switch {
	case errors.As(err, &notFound):
		return fmt.Errorf("%w; install it or choose another provider with --provider", err)
	case errors.As(err, &timedOut):
		return fmt.Errorf("%w; retry with a larger --timeout", err)
	case errors.As(err, &execFailed):
		return fmt.Errorf("%w; check the tool's auth and environment", err)
	case errors.As(err, &noJSON):
		return fmt.Errorf("%w; retry with a stricter prompt", err)
	default:
		return err
	}
}
