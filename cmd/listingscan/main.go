// Package main implements the listingscan CLI: a deterministic marketplace
// listing parser. This file is the entry point and command registration hub;
// individual commands live in cmd_*.go (SPEC_FULL.md §4.19).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theatomus/listingscanner/internal/config"
	"github.com/theatomus/listingscanner/internal/logging"
)

var (
	// Global flags
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "listingscan",
	Short: "listingscan parses marketplace listing files into structured records",
	Long: `listingscan extracts structured fields (device type, brand, model, CPU,
RAM, storage, and more) from marketplace listing title/description text,
deterministically and without any network or LLM calls.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = "listingscan.yaml"
		}
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		if err := logging.Initialize(cfg.Logging.DebugMode, cfg.Logging.Categories, cfg.Logging.Level, cfg.Logging.JSONFormat); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		if cfg.Logging.DebugMode {
			auditDir := filepath.Dir(cfg.Store.DSN)
			if auditDir == "." || auditDir == "" {
				auditDir, _ = os.Getwd()
			}
			if err := logging.InitAudit(auditDir); err != nil {
				logging.BootWarn("failed to initialize audit log: %v", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAudit()
		logging.CloseAll()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to listingscan.yaml (default: ./listingscan.yaml)")

	rootCmd.AddCommand(parseCmd, scanCmd, rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
