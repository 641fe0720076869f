// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowtrace/internal/cache"
	"github.com/katalvlaran/rowtrace/internal/metrics"
	"github.com/katalvlaran/rowtrace/internal/server"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves traces as JSON over HTTP. Computed traces are cached by content and addressable by id.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			c, err := cache.New(a.cfg.CacheSize)
			if err != nil {
				return err
			}
			handler := server.NewHandler(&server.Server{
				Cache:   c,
				Metrics: metrics.New(),
				Logger:  a.logger,
				MaxDim:  a.cfg.MaxDim,
				Timeout: timeout,
			})

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("starting server", "addr", srv.Addr, "cache", a.cfg.CacheSize, "max_dim", a.cfg.MaxDim)
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err

			case sig := <-shutdown:
				a.logger.Info("shutting down", "signal", sig.String())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "grace", shutdownGrace, "error", err)
					if err := srv.Close(); err != nil {
						return err
					}
				}
				a.logger.Info("server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides ROWTRACE_ADDR)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request computation timeout")

	return cmd
}
