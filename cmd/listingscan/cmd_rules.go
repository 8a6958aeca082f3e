package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/theatomus/listingscanner/internal/clean"
	"github.com/theatomus/listingscanner/internal/logging"
	"github.com/theatomus/listingscanner/internal/parse"
	"github.com/theatomus/listingscanner/internal/reftables"
	"github.com/theatomus/listingscanner/internal/store"
	"github.com/theatomus/listingscanner/cmd/listingscan/ui"
)

// rulesCmd launches a read-only TUI over one listing's parsed fields and any
// diagnostics collected while parsing it (SPEC_FULL.md §4.20). Given a file
// argument it parses that file fresh; otherwise it shows the most recently
// scanned listing from the configured store.
var rulesCmd = &cobra.Command{
	Use:   "rules [file]",
	Short: "Browse a parsed listing's fields in a read-only TUI",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	var page ui.FindingsPageModel
	var err error

	if len(args) == 1 {
		page, err = findingsPageForFile(args[0])
	} else {
		page, err = findingsPageFromStore()
	}
	if err != nil {
		return err
	}

	p := tea.NewProgram(page, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func findingsPageForFile(path string) (ui.FindingsPageModel, error) {
	raw, err := clean.ReadListingFile(path)
	if err != nil {
		return ui.FindingsPageModel{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tables, ok := reftables.Load(cfg.ReferenceTables.OverridePath)
	if !ok && cfg.ReferenceTables.OverridePath != "" {
		logging.BootWarn("reference table override unreadable, using built-in tables: %s", cfg.ReferenceTables.OverridePath)
	}
	rec := parse.Listing(raw, tables, parseOptions(cfg))
	return ui.NewFindingsPageModel(path, rec, nil), nil
}

func findingsPageFromStore() (ui.FindingsPageModel, error) {
	s, err := store.NewSQLiteStore(cfg.Store.DSN)
	if err != nil {
		return ui.FindingsPageModel{}, fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	path, fields, diagnostics, err := store.LoadMostRecent(s)
	if err != nil {
		return ui.FindingsPageModel{}, fmt.Errorf("failed to load most recent listing: %w", err)
	}
	return ui.NewFindingsPageModelFromFields(path, fields, diagnostics), nil
}
