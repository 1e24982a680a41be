package memgraph

import (
	"log/slog"

	"github.com/gogpu/memgraph/internal/logger"
)

// SetLogger configures the logger for memgraph and all its sub-packages.
// By default, memgraph produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by memgraph:
//   - [slog.LevelDebug]: per-frame diagnostics (frame skipped, index rebuilt)
//   - [slog.LevelInfo]: lifecycle events (engine created, engine closed)
//   - [slog.LevelWarn]: recoverable failures (backing resize, font load)
//
// Example:
//
//	memgraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by memgraph.
func Logger() *slog.Logger {
	return logger.L()
}
