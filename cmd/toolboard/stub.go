package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"toolboard/internal/stubserver"
)

func newStubCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve canned backend responses for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = e.cfg.Stub.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return stubserver.Serve(ctx, addr, e.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from stub.addr)")
	return cmd
}
