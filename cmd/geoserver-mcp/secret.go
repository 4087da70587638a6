package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/geoservercloud/geoserver-mcp/internal/secrets"
)

func cmdSecret(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: geoserver-mcp secret <init-key|set-password|clear>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch args[0] {
	case "init-key":
		if err := os.MkdirAll(filepath.Dir(cfg.AgeKeyPath), 0o700); err != nil {
			return fmt.Errorf("create key directory: %w", err)
		}
		if _, err := secrets.GenerateKeyFile(cfg.AgeKeyPath); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		fmt.Printf("Age key written to %s\n", cfg.AgeKeyPath)

	case "set-password":
		if len(args) < 2 {
			return fmt.Errorf("usage: geoserver-mcp secret set-password <password>")
		}
		sm, err := openManager(cfg)
		if err != nil {
			return err
		}
		if err := sm.SetPassword(args[1]); err != nil {
			return fmt.Errorf("store password: %w", err)
		}
		fmt.Printf("GeoServer password stored in %s\n", cfg.CredentialPath)

	case "clear":
		sm, err := openManager(cfg)
		if err != nil {
			return err
		}
		if err := sm.Clear(); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		fmt.Println("Stored credential removed")

	default:
		return fmt.Errorf("unknown secret command: %s\nUsage: geoserver-mcp secret <init-key|set-password|clear>", args[0])
	}
	return nil
}

func openManager(cfg *Config) (*secrets.Manager, error) {
	enc, err := secrets.NewAgeEncryptor(cfg.AgeKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load age key (run 'geoserver-mcp secret init-key' first): %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.CredentialPath), 0o700); err != nil {
		return nil, fmt.Errorf("create credential directory: %w", err)
	}
	return secrets.NewManager(cfg.CredentialPath, enc), nil
}
