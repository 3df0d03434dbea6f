package cli

import "go.uber.org/zap"

// newLogger builds the zap.Logger used for ResourceWarning and
// internal diagnostics — a production config writing to stderr, so
// it never interleaves with the canonical stdout grammar. Grounded on
// the wider corpus's direct zap dependency (see
// wriggle/hotstuff/backend/config.go's logger.Warnf/Infof usage).
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
