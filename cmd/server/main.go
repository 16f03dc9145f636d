package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codevai-team/codev-bot/pkg/config"
	"github.com/codevai-team/codev-bot/pkg/observer"
	"github.com/codevai-team/codev-bot/pkg/webhook"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, err := cfg.Logger(os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build logger")
	}

	endpoint := webhook.NewEndpoint(
		observer.NewMulti(
			observer.NewLogger(logger),
			observer.NewMetrics(),
		),
	).WithMaxBodyBytes(cfg.MaxBodyBytes)

	ready := &atomic.Bool{}

	servers := []*http.Server{
		{
			Handler:      NewWebhookRouter(endpoint, logger),
			Addr:         cfg.ListenAddress(),
			WriteTimeout: cfg.WriteTimeout,
			ReadTimeout:  cfg.ReadTimeout,
		},
	}

	if cfg.OpsListenAddr != "" {
		servers = append(servers, &http.Server{
			Handler:      NewOpsRouter(ready),
			Addr:         cfg.OpsListenAddr,
			WriteTimeout: cfg.WriteTimeout,
			ReadTimeout:  cfg.ReadTimeout,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, logger, ready, cfg, servers); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(
	ctx context.Context,
	logger zerolog.Logger,
	ready *atomic.Bool,
	cfg *config.Config,
	servers []*http.Server,
) error {
	listeners := make([]net.Listener, 0, len(servers))

	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}

			return errors.Wrapf(err, "listen %s", srv.Addr)
		}

		listeners = append(listeners, ln)
	}

	errCh := make(chan error, len(servers))

	for i, srv := range servers {
		go func(srv *http.Server, ln net.Listener) {
			logger.Info().Str("addr", ln.Addr().String()).Msg("listening")

			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- errors.Wrapf(err, "serve %s", srv.Addr)
			}
		}(srv, listeners[i])
	}

	ready.Store(true)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case runErr = <-errCh:
	}

	ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, errors.Wrapf(err, "shutdown %s", srv.Addr))
		}
	}

	return runErr
}
