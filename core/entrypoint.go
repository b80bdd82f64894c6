package core

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/encodeous/tint"
	"github.com/routelab/dvr/impl"
	"github.com/routelab/dvr/state"
	slogmulti "github.com/samber/slog-multi"
)

// Start runs a router node until it fails or receives a shutdown
// signal.
func Start(cfg state.RouterCfg, logLevel slog.Level) error {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(context.Canceled)

	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        logLevel,
			AddSource:    false,
			TimeFormat:   "15:04:05",
			CustomPrefix: cfg.Address,
		}),
	}
	if cfg.LogPath != "" {
		err := os.MkdirAll(path.Dir(cfg.LogPath), 0700)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return err
		}
		defer f.Close()
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel}))
	}
	logger := slog.New(slogmulti.Fanout(handlers...))

	env := &state.Env{
		RouterCfg: cfg,
		Context:   ctx,
		Cancel:    cancel,
		Log:       logger,
	}

	table := impl.NewTable(&cfg)
	receiver := impl.NewReceiver(env, table)
	scheduler := impl.NewScheduler(env, table, impl.NewHTTPTransport())

	logger.Info("router initialized",
		"network", cfg.Network,
		"neighbors", len(cfg.Neighbors),
		"interval", cfg.Interval())
	for dest, e := range table.Snapshot() {
		logger.Debug("seeded route", "dest", dest, "cost", e.Cost, "nh", e.NextHop)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			cancel(errors.New("received shutdown signal"))
		case <-ctx.Done():
		}
	}()

	go scheduler.Run()

	srv := &http.Server{Addr: cfg.Address, Handler: NewHandler(env, table, receiver)}
	go func() {
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = srv.Shutdown(sctx)
	}()

	logger.Info("listening", "addr", cfg.Address)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("stopped", "reason", context.Cause(ctx).Error())
	return nil
}
