package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/api"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/health"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
	_ "github.com/Vindusvisker/productivity-tab-sub000/internal/infra/metrics" // Register Prometheus metrics
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

// Daemon is the core ptab runtime. It wires together all services.
type Daemon struct {
	Config Config
	DB     *sqlite.DB
	Bus    *bus.Bus
	Engine *progression.Engine
	Health *health.Checker
	Server *api.Server
	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = ptabHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	b := bus.New()
	engine := progression.NewEngine(db, b)
	engine.Start()

	checker := health.NewChecker(db, dataDir)

	srv := api.NewServer(engine, db, b)
	srv.SetVersion(version)
	srv.SetChecker(checker)
	srv.SetCORSOrigin(cfg.API.CORSOrigin)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config: cfg,
		DB:     db,
		Bus:    b,
		Engine: engine,
		Health: checker,
		Server: srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	// Prime the derived state so the first dashboard load is fresh.
	if _, err := d.Engine.Recompute(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: initial recompute: %v\n", err)
	}

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("ptab serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
