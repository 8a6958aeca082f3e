// Package logging provides config-driven, per-pipeline-stage structured
// logging for listingscan, backed by zap (SPEC_FULL.md §4.18). Logging is
// off by default; it activates once Initialize is called (an empty category
// list enables every category).
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies which pipeline stage a log line came from.
type Category string

const (
	CategoryBoot        Category = "boot"        // startup/config/reference-table loading
	CategoryTokenizer   Category = "tokenizer"   // internal/clean
	CategoryContext     Category = "context"     // internal/context
	CategoryExtract     Category = "extract"     // internal/extract
	CategoryClassify    Category = "classify"    // internal/classify
	CategoryBrand       Category = "brand"       // internal/brand
	CategoryPostprocess Category = "postprocess" // internal/postprocess
	CategoryStore       Category = "store"       // internal/store
	CategoryCLI         Category = "cli"         // cmd/listingscan
)

var allCategories = []Category{
	CategoryBoot, CategoryTokenizer, CategoryContext, CategoryExtract,
	CategoryClassify, CategoryBrand, CategoryPostprocess, CategoryStore, CategoryCLI,
}

var (
	mu         sync.RWMutex
	debugMode  bool
	jsonFormat bool
	enabled    map[Category]bool
	level      zapcore.Level
	core       *zap.Logger
	loggers    = map[Category]*Logger{}
)

// Initialize turns logging on with the given category whitelist (empty
// means "all categories") and level/format settings. Call once at startup;
// safe to call again to reconfigure (e.g. after config reload).
func Initialize(debug bool, categories []string, levelName string, json bool) error {
	mu.Lock()
	defer mu.Unlock()

	debugMode = debug
	jsonFormat = json
	level = parseLevel(levelName)

	enabled = map[Category]bool{}
	if len(categories) == 0 {
		for _, c := range allCategories {
			enabled[c] = true
		}
	} else {
		for _, c := range categories {
			enabled[Category(c)] = true
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if jsonFormat {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	zapCore := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	core = zap.New(zapCore)
	loggers = map[Category]*Logger{}
	return nil
}

func parseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsDebugMode reports whether debug-level logging is active.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugMode
}

// IsCategoryEnabled reports whether a category currently emits log lines.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if core == nil {
		return false
	}
	return enabled[category]
}

// Logger is a category-scoped handle onto the shared zap core.
type Logger struct {
	category Category
}

// Get returns the logger for a category. Safe to call before Initialize;
// all methods become no-ops until logging is turned on.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	l := &Logger{category: category}
	mu.Lock()
	loggers[category] = l
	mu.Unlock()
	return l
}

func (l *Logger) active() bool {
	mu.RLock()
	defer mu.RUnlock()
	return core != nil && enabled[l.category]
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.active() {
		return
	}
	core.Debug(fmt.Sprintf(format, args...), zap.String("category", string(l.category)))
}

func (l *Logger) Info(format string, args ...interface{}) {
	if !l.active() {
		return
	}
	core.Info(fmt.Sprintf(format, args...), zap.String("category", string(l.category)))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.active() {
		return
	}
	core.Warn(fmt.Sprintf(format, args...), zap.String("category", string(l.category)))
}

func (l *Logger) Error(format string, args ...interface{}) {
	if !l.active() {
		return
	}
	core.Error(fmt.Sprintf(format, args...), zap.String("category", string(l.category)))
}

// CloseAll flushes the underlying zap core; call at shutdown.
func CloseAll() {
	mu.RLock()
	c := core
	mu.RUnlock()
	if c != nil {
		_ = c.Sync()
	}
}

// Boot/BootDebug/BootError are convenience wrappers for the startup path
// (config loading, reference-table loading) that runs before any pipeline
// stage has a listing to attribute a category to.
func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debug(format, args...) }
func BootWarn(format string, args ...interface{})  { Get(CategoryBoot).Warn(format, args...) }
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

// Store/StoreDebug are convenience wrappers for internal/store, which logs
// far more often than it warrants a Get(CategoryStore) call site each time.
func Store(format string, args ...interface{})      { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{}) { Get(CategoryStore).Debug(format, args...) }

// Timer measures and logs the duration of one pipeline stage.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
