package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/augurk/augurk/internal/config"
	"github.com/augurk/augurk/internal/server"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	runtime, err := NewRuntime(cfg)
	if err != nil {
		slog.Error("failed to initialize runtime", "error", err)
		os.Exit(1)
	}

	if err := runtime.Start(); err != nil {
		runtime.Logger.Error("failed to start runtime", "error", err)
		os.Exit(1)
	}

	modules := NewModules(runtime, cfg)
	if err := modules.Start(runtime); err != nil {
		runtime.Logger.Error("failed to start modules", "error", err)
		os.Exit(1)
	}

	router, err := buildRouter(runtime, cfg, modules)
	if err != nil {
		runtime.Logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}
	httpServer := server.New(&cfg.Server, router, runtime.Logger)
	if err := httpServer.Start(runtime.Lifecycle); err != nil {
		runtime.Logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	runtime.Lifecycle.WaitForStartup()
	runtime.Logger.Info("all subsystems ready", "addr", cfg.Server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	runtime.Logger.Info("initiating shutdown")
	if err := runtime.Lifecycle.Shutdown(cfg.Server.ShutdownTimeoutDuration()); err != nil {
		runtime.Logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	runtime.Logger.Info("service stopped")
}
