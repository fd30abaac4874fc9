package parmap

import "github.com/rs/zerolog"

// The package logger discards everything unless a program opts into
// diagnostics with SetLogger.
var logger = zerolog.Nop()

// SetLogger routes the package's debug diagnostics (strategy selection
// and worker fan-out) to l. SetLogger must not be called concurrently
// with Map or MapN.
func SetLogger(l zerolog.Logger) {
	logger = l
}
