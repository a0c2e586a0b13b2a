package pinin

import "github.com/rs/zerolog"

// logger is the package-level logger, following the teacher's
// common/logger.go convention: silent (zero value) until SetLogger is
// called, never mandatory for correct operation.
var logger zerolog.Logger

// SetLogger installs l as the package logger, e.g. for dictionary-loading
// diagnostics. Safe to call before any Context is created.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the currently installed package logger.
func GetLogger() zerolog.Logger {
	return logger
}
