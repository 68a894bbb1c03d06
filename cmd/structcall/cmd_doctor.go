package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"structcall/internal/llmcli"
)

// doctorCmd reports which provider CLI tools are installed. Existence checks
// only: no tool is invoked.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which provider CLI tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		providers := llmcli.KnownProviders()

		type status struct {
			provider string
			command  string
			path     string
		}
		results := make([]status, len(providers))

		var g errgroup.Group
		for i, p := range providers {
			i, p := i, p
			g.Go(func() error {
				results[i] = status{
					provider: p,
					command:  llmcli.Resolve(p).Command,
					path:     llmcli.ResolvePath(p),
				}
				return nil
			})
		}
		// Probes report absence instead of failing.
		_ = g.Wait()

		missing := 0
		for _, r := range results {
			if r.path == "" {
				missing++
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s MISSING\n", r.provider, r.command)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s %s\n", r.provider, r.command, r.path)
		}
		if missing == len(results) {
			return fmt.Errorf("no provider CLI tools installed")
		}
		return nil
	},
}
