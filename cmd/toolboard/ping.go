package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"toolboard/internal/client"
	"toolboard/internal/health"
	"toolboard/internal/logger"
)

func newPingCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logger.ContextWithLogger(cmd.Context(), e.log)
			res := health.NewProber(client.New(e.cfg.Backend.URL)).Probe(ctx)
			if res.Err != nil {
				return fmt.Errorf("%s %s: %w", e.cfg.Backend.URL, health.DownMessage, res.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (%s) in %s\n",
				e.cfg.Backend.URL, res.Status, res.Message, res.Latency.Round(time.Millisecond))
			return nil
		},
	}
}
