package forest

import "go.uber.org/zap"

// Logger receives forest's internal diagnostics — currently just the
// fatal line written when a worker panics. cmd/vinci wires its own
// zap.Logger in here at startup (internal/cli/logging.go); tests and
// any other embedder get a no-op logger by default.
var Logger = zap.NewNop()
