package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/geoservercloud/geoserver-mcp/internal/config"
	"github.com/geoservercloud/geoserver-mcp/internal/store/sqlite"
)

func cmdStatus() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	connOpts := []config.Option{}
	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		fileCfg, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		connOpts = append(connOpts, config.WithFileConfig(fileCfg))
	}
	conn := config.NewCache(connOpts...).Resolve()

	fmt.Printf("GeoServer MCP Status (db: %s)\n", cfg.DBPath)
	fmt.Printf("  GeoServer URL:  %s\n", conn.URL)
	fmt.Printf("  GeoServer user: %s\n", conn.User)
	fmt.Printf("  Password:       ***hidden***\n")

	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	stats, err := db.GetInvocationStats(ctx, time.Time{}, time.Time{})
	if err != nil {
		return fmt.Errorf("invocation stats: %w", err)
	}

	fmt.Printf("  Invocations:    %d (%d errors)\n", stats.Total, stats.Errors)
	fmt.Printf("  Avg latency:    %.1f ms\n", stats.AvgLatencyMs)
	return nil
}
