//go:build !debug

// Package debug exposes diagnostics that only exist in builds tagged "debug".
// Guard calls with Enabled so release builds drop them.
package debug

const Enabled = false

func Log(format string, args ...interface{}) {}
