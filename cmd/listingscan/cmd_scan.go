// Package main implements the listingscan CLI commands.
// This file contains the scan command: parallel worker-pool dispatch over a
// directory of listing files (SPEC_FULL.md §4.19, §5).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/theatomus/listingscanner/internal/clean"
	"github.com/theatomus/listingscanner/internal/logging"
	"github.com/theatomus/listingscanner/internal/parse"
	"github.com/theatomus/listingscanner/internal/reftables"
	"github.com/theatomus/listingscanner/internal/store"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory of listing files and persist parsed records",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		fmt.Println("no .txt listing files found")
		return nil
	}

	tables, ok := reftables.Load(cfg.ReferenceTables.OverridePath)
	if !ok && cfg.ReferenceTables.OverridePath != "" {
		logging.BootWarn("reference table override unreadable, using built-in tables: %s", cfg.ReferenceTables.OverridePath)
	}

	writer, err := store.NewSQLiteStore(cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer writer.Close()

	opts := parseOptions(cfg)
	workers := cfg.WorkerCount()
	if workers > len(files) {
		workers = len(files)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sem := make(chan struct{}, workers)
	g, ctx := errgroup.WithContext(ctx)

	for _, path := range files {
		path := path
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			return scanOne(ctx, writer, tables, opts, path)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("scanned %d files from %s\n", len(files), dir)
	return nil
}

// scanOne parses and persists a single file. Gross I/O failures (§7) are
// recorded in listing_errors and never abort the rest of the batch: the
// only error returned to the errgroup is a cancelled context.
func scanOne(ctx context.Context, writer store.Writer, tables *reftables.Tables, opts parse.Options, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := clean.ReadListingFile(path)
	if err != nil {
		logging.BootError("failed to read %s: %v", path, err)
		if werr := writer.WriteError(ctx, path, err); werr != nil {
			logging.Get(logging.CategoryStore).Warn("failed to record read error for %s: %v", path, werr)
		}
		return nil
	}

	rec := parse.Listing(raw, tables, opts)
	if err := writer.WriteListing(ctx, path, rec); err != nil {
		if werr := writer.WriteError(ctx, path, err); werr != nil {
			logging.Get(logging.CategoryStore).Warn("failed to record write error for %s: %v", path, werr)
		}
	}
	return nil
}
