package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"points-ledger/config"
	"points-ledger/global"
	"points-ledger/initialize"
	"points-ledger/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	// pick up config edits without a restart; only logged fields that are
	// read per-request take effect live
	if err := config.Watch(*configPath, func(cfg *config.Config) {
		global.Config = *cfg
		global.Logger.Info().Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch unavailable")
	}

	srv := server.NewHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	global.Logger.Info().Str("addr", srv.Addr()).Msg("listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			global.Logger.Fatal().Err(err).Msg("http server failed")
		}
	case sig := <-stop:
		global.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			global.Logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
