// Package logging also provides a decoupled audit event stream: one JSON
// line per parsed file, independent of the human-readable debug log
// (SPEC_FULL.md §4.18).
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditEventType names one audit-stream event.
type AuditEventType string

const (
	AuditListingParsed AuditEventType = "listing_parsed"
	AuditListingError  AuditEventType = "listing_error"
)

// AuditEvent is one row of the audit stream: which file was parsed, what it
// resolved to, and any diagnostic collected along the way (spec.md §7,
// "per-item log").
type AuditEvent struct {
	Timestamp  int64          `json:"ts"`
	EventType  AuditEventType `json:"event"`
	SourcePath string         `json:"source_path"`
	DeviceType string         `json:"device_type,omitempty"`
	Brand      string         `json:"brand,omitempty"`
	Model      string         `json:"model,omitempty"`
	FieldCount int            `json:"field_count"`
	DurationMs int64          `json:"dur_ms"`
	Error      string         `json:"error,omitempty"`
}

var (
	auditFile *os.File
	auditMu   sync.Mutex
)

// InitAudit opens the audit log file under dir/listingscan_audit.log,
// appending across process restarts. A no-op unless debug mode is on.
func InitAudit(dir string) error {
	if !IsDebugMode() {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}
	path := filepath.Join(dir, "listingscan_audit.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditFile = file
	return nil
}

// CloseAudit closes the audit log file.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditFile != nil {
		auditFile.Close()
		auditFile = nil
	}
}

// LogListingParsed records a successful parse.
func LogListingParsed(sourcePath, deviceType, brand, model string, fieldCount int, duration time.Duration) {
	writeAuditEvent(AuditEvent{
		EventType:  AuditListingParsed,
		SourcePath: sourcePath,
		DeviceType: deviceType,
		Brand:      brand,
		Model:      model,
		FieldCount: fieldCount,
		DurationMs: duration.Milliseconds(),
	})
}

// LogListingError records a parse that failed at the orchestrator boundary
// (spec.md §7, "gross I/O issues ... reported to the caller").
func LogListingError(sourcePath string, err error, duration time.Duration) {
	writeAuditEvent(AuditEvent{
		EventType:  AuditListingError,
		SourcePath: sourcePath,
		DurationMs: duration.Milliseconds(),
		Error:      err.Error(),
	})
}

func writeAuditEvent(event AuditEvent) {
	if !IsDebugMode() {
		return
	}
	event.Timestamp = time.Now().UnixMilli()

	auditMu.Lock()
	defer auditMu.Unlock()
	if auditFile == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	auditFile.Write(append(data, '\n'))
}
