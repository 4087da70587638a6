package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geoservercloud/geoserver-mcp/internal/api"
	"github.com/geoservercloud/geoserver-mcp/internal/audit"
	"github.com/geoservercloud/geoserver-mcp/internal/cache"
	"github.com/geoservercloud/geoserver-mcp/internal/config"
	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
	"github.com/geoservercloud/geoserver-mcp/internal/mcp"
	"github.com/geoservercloud/geoserver-mcp/internal/secrets"
	"github.com/geoservercloud/geoserver-mcp/internal/store/sqlite"
	"github.com/geoservercloud/geoserver-mcp/internal/tools"
)

func cmdServe(args []string) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg, args)

	// Load YAML config if the file exists. Environment variables win.
	var fileCfg *config.FileConfig
	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		fileCfg, err = config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		if fileCfg.HTTPAddr != "" && os.Getenv("GEOSERVER_MCP_HTTP_ADDR") == "" {
			cfg.HTTPAddr = fileCfg.HTTPAddr
		}
		if fileCfg.AuditDB != "" && os.Getenv("GEOSERVER_MCP_DB") == "" {
			cfg.DBPath = fileCfg.AuditDB
		}
		if fileCfg.LogLevel != "" && os.Getenv("GEOSERVER_MCP_LOG_LEVEL") == "" {
			cfg.LogLevel = parseLogLevel(fileCfg.LogLevel)
		}
	}

	// stdout is the MCP channel in stdio mode, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if fileCfg != nil {
		logger.Info("loaded config", "file", cfg.ConfigFile)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	connOpts := []config.Option{}
	if fileCfg != nil {
		connOpts = append(connOpts, config.WithFileConfig(fileCfg))
	}
	if _, err := os.Stat(cfg.AgeKeyPath); err == nil {
		enc, err := secrets.NewAgeEncryptor(cfg.AgeKeyPath)
		if err != nil {
			return fmt.Errorf("load age key: %w", err)
		}
		sm := secrets.NewManager(cfg.CredentialPath, enc)
		connOpts = append(connOpts, config.WithCredentialSource(sm))
		logger.Info("encrypted credential store enabled", "key", cfg.AgeKeyPath)
	}
	connCache := config.NewCache(connOpts...)

	// Capabilities documents are shared across client builds.
	ttl := 5 * time.Minute
	if fileCfg != nil && fileCfg.CapabilitiesTTLSec > 0 {
		ttl = time.Duration(fileCfg.CapabilitiesTTLSec) * time.Second
	}
	caps := cache.New[string, string](ttl)

	factory := func(conn config.Connection) *geoserver.Client {
		return geoserver.NewClient(conn, geoserver.WithCapabilitiesCache(caps))
	}

	dispatcher := tools.NewDispatcher(
		tools.DefaultRegistry(), connCache, factory,
		tools.WithAuditor(audit.NewLogger(db)),
		tools.WithLogger(logger),
	)
	srv := mcp.NewServer(dispatcher, "geoserver-mcp", version,
		mcp.WithServerLogger(logger))

	switch cfg.Mode {
	case "stdio":
		logger.Info("starting in stdio mode", "tools", dispatcher.Registry().Len())
		return srv.RunStdio(ctx)
	case "http":
		return runHTTP(ctx, cfg, db, srv)
	default:
		return fmt.Errorf("unknown mode %q (want stdio or http)", cfg.Mode)
	}
}

func runHTTP(ctx context.Context, cfg *Config, db *sqlite.DB, mcpSrv *mcp.Server) error {
	router := api.NewRouter(api.RouterDeps{
		Store:   db,
		MCP:     mcpSrv,
		Version: version,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
