package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/theatomus/listingscanner/internal/clean"
	"github.com/theatomus/listingscanner/internal/config"
	"github.com/theatomus/listingscanner/internal/logging"
	"github.com/theatomus/listingscanner/internal/parse"
	"github.com/theatomus/listingscanner/internal/reftables"
)

var toClipboard bool

// parseCmd parses a single listing file and prints its serialized record.
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one listing file and print its structured fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the serialized record to the clipboard")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	raw, err := clean.ReadListingFile(path)
	if err != nil {
		logging.BootError("failed to read %s: %v", path, err)
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	tables, ok := reftables.Load(cfg.ReferenceTables.OverridePath)
	if !ok && cfg.ReferenceTables.OverridePath != "" {
		logging.BootWarn("reference table override unreadable, using built-in tables: %s", cfg.ReferenceTables.OverridePath)
	}

	rec := parse.Listing(raw, tables, parseOptions(cfg))
	out := rec.Serialize()
	fmt.Fprint(os.Stdout, out)

	if toClipboard {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to copy to clipboard: %v\n", err)
		}
	}
	return nil
}

func parseOptions(c *config.Config) parse.Options {
	return parse.Options{EnableTonerCartridges: c.Features.EnableTonerCartridges}
}
