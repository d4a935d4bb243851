package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/frudas24/inputkit/internal/app"
	"github.com/frudas24/inputkit/internal/logging"
	"github.com/frudas24/inputkit/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the remote control server.
func (c *cli) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept input commands over an authenticated websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.ListenAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return c.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "listen", "", "listen address (overrides listen_addr)")
	return cmd
}

// serve wires the application and blocks until ctx is done.
func (c *cli) serve(ctx context.Context) error {
	if err := c.cfg.ValidateServe(); err != nil {
		return err
	}
	inj, err := c.injector()
	if err != nil {
		return err
	}

	logger := logging.Component(c.logger, "server")
	appInstance, err := app.New(session.New(c.cfg.Password), inj, listDisplays, logger)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              c.cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", c.cfg.ListenAddr)
	if err != nil {
		return err
	}
	logger.Info("listening", zap.String("addr", ln.Addr().String()), zap.Any("delays", c.cfg.Delays()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
		return err
	}
	logger.Info("stopped")
	return nil
}
