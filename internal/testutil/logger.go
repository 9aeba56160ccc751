// Package testutil holds helpers shared across test packages.
package testutil

import (
	"io"
	"log/slog"

	"github.com/mbarbosa/recado-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards every record, so test
// output stays limited to the test runner's own reporting.
func MakeNoopLogger() *logger.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return &logger.Logger{Logger: slog.New(handler)}
}
