package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/cli"
	"github.com/example/reservation-console/internal/client"
	"github.com/example/reservation-console/internal/config"
	"github.com/example/reservation-console/internal/logging"
	"github.com/example/reservation-console/internal/render"
	"github.com/example/reservation-console/internal/web"
)

func main() {
	menu := flag.Bool("menu", false, "run the terminal menu instead of the web console")
	flag.Parse()

	// The menu owns stdout, so its logs go to stderr.
	logOut := io.Writer(os.Stdout)
	if *menu {
		logOut = os.Stderr
	}
	logger := logging.New(logOut, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotenv(".env"); err != nil {
		logger.Error("failed to read .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	api, err := client.New(cfg.BackendURL, client.WithTimeout(cfg.RequestTimeout), client.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create backend client", "error", err)
		os.Exit(1)
	}

	consoleOpts := []application.Option{
		application.WithLogger(logger),
		application.WithDeleteControls(cfg.DeleteControls),
	}

	if *menu {
		console := application.NewConsole(api, render.NewTextTables(os.Stdout), consoleOpts...)
		m := cli.New(console, os.Stdin, os.Stdout, cli.WithExportDir(cfg.ExportDir), cli.WithLogger(logger))
		if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("menu stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(ctx, cfg, api, consoleOpts, logger); err != nil {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config.Config, api application.API, opts []application.Option, logger *slog.Logger) error {
	tables := render.NewHTMLTables(logger)
	console := application.NewConsole(api, tables, opts...)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ConsolePort),
		Handler:           web.NewHandler(console, tables, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("reservation console listening", "addr", server.Addr, "backend", cfg.BackendURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
