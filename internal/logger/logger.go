package logger

import "go.uber.org/zap"

// Logger is the process-wide logger. It starts as a no-op so packages can
// log safely before (or without) Ensure being called, e.g. from tests.
var Logger = zap.NewNop()

// Ensure installs the real logger. Called once from main.
func Ensure() {
	l, err := zap.NewProduction()
	if err != nil {
		return
	}
	Logger = l
}
