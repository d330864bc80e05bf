package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/nutrientcalc/internal/config"
	"github.com/JonMunkholm/nutrientcalc/internal/core"
	"github.com/JonMunkholm/nutrientcalc/internal/logging"
	"github.com/JonMunkholm/nutrientcalc/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	src, err := core.OpenSource(cfg.Table.Source, core.SourceOptions{
		Sheet: cfg.Table.Sheet,
		Table: cfg.Table.Name,
	})
	if err != nil {
		fatal("failed to open table source", err)
	}

	// The table is read once; a schema problem stops the process before
	// the calculator is ever served.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Table.LoadTimeout)
	table, err := core.NewLoader().Load(loadCtx, src)
	cancelLoad()
	if err != nil {
		fatal("failed to load table", err)
	}

	server := web.NewServer(table, cfg.Server)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting",
		"addr", cfg.Server.Addr(),
		"records", table.Len(),
		"load_id", table.LoadID,
	)
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// Exit codes.
const (
	exitFailure = 1
	exitSchema  = 2 // The table loaded but its columns are unusable
)

// fatal logs err with its user-facing message and exits.
func fatal(msg string, err error) {
	code := exitFailure
	if core.IsSchemaError(err) {
		msg += ": fix the table columns and restart"
		code = exitSchema
	}
	slog.Error(msg,
		"error", err,
		"code", core.MapError(err).Code,
		"detail", core.FormatUserError(err),
	)
	os.Exit(code)
}
