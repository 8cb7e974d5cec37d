package main

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-pqueue/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one priority queue over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return errors.Wrapf(err, "invalid --addr %q", addr)
				}
				if cfg.Port, err = strconv.Atoi(port); err != nil {
					return errors.Wrapf(err, "invalid port in --addr %q", addr)
				}
				cfg.Host = host
			}
			if backend != "" {
				cfg.Backend = backend
			}

			srv, err := server.New(&cfg, server.WithLogger(a.log))
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address host:port (default from config)")
	cmd.Flags().StringVar(&backend, "backend", "", "queue backend: heap or array (default from config)")
	return cmd
}
