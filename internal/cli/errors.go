package cli

// This file defines error handling utilities for the faultctl CLI:
//   - Sentinel errors for the tool's own failure modes
//   - Structured error logging for taxonomy errors
//   - Debug mode management for error output

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"lumen/pkg/fault"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// Sentinel errors for faultctl operations. The tool's own failures are plain
// wrapped errors; only the framework's failures use the fault taxonomy.
var (
	ErrUnknownKind       = errors.New("unknown fault kind")
	ErrLocaleNotReadable = errors.New("locale file not found or not readable")
	ErrCatalogInvalid    = errors.New("catalog failed validation")
)

// wrapSentinel attaches a sentinel to a cause so callers can match the
// category with errors.Is while keeping the underlying detail.
func wrapSentinel(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// logStructuredError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag).
// Taxonomy errors contribute their kind, capabilities, and substitution
// arguments as structured fields; other errors log plainly.
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var faultErr *fault.Error
	if errors.As(err, &faultErr) {
		fields := []zap.Field{
			zap.String("fault.kind", string(faultErr.Kind())),
			zap.String("fault.caps", faultErr.Caps().String()),
			zap.String("fault.message", faultErr.Message()),
			zap.Error(err),
		}
		for key, value := range faultErr.Args() {
			fields = append(fields, zap.Any("fault.args."+key, value))
		}
		logger.Error(msg, fields...)
		return
	}

	logger.Error(msg, zap.Error(err))
}
