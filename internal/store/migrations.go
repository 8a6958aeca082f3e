// Package store provides schema migrations for the listings database. This
// file implements an additive, idempotent column migration system: existing
// databases gain missing columns via ALTER TABLE without ever dropping data.
package store

import (
	"database/sql"
	"fmt"

	"github.com/theatomus/listingscanner/internal/logging"
)

// Migration describes one column that must exist on a table.
type Migration struct {
	Table  string
	Column string
	Def    string
}

// pendingMigrations lists columns added to the schema after its initial
// release. New columns belong here rather than in the CREATE TABLE
// statements, so existing databases pick them up without reinitializing.
var pendingMigrations = []Migration{
	{"listings", "leaf_category", "TEXT"},
}

// RunMigrations applies any pending column migrations to an existing
// database. Safe to call on a freshly created database too: initialize's
// CREATE TABLE statements omit these columns, so there every migration adds
// its column, and a second run skips them all.
func RunMigrations(db *sql.DB) error {
	timer := logging.StartTimer(logging.CategoryStore, "RunMigrations")
	defer timer.Stop()

	applied, skipped := 0, 0
	for _, m := range pendingMigrations {
		if !tableExists(db, m.Table) {
			skipped++
			continue
		}
		if columnExists(db, m.Table, m.Column) {
			skipped++
			continue
		}
		query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		if _, err := db.Exec(query); err != nil {
			logging.Get(logging.CategoryStore).Warn("migration failed for %s.%s: %v", m.Table, m.Column, err)
			skipped++
			continue
		}
		logging.StoreDebug("migration applied: added %s.%s", m.Table, m.Column)
		applied++
	}

	logging.StoreDebug("schema migrations complete: applied=%d skipped=%d", applied, skipped)
	return nil
}

func columnExists(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

func tableExists(db *sql.DB, table string) bool {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
	if err != nil {
		return false
	}
	return count > 0
}
