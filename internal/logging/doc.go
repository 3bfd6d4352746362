// Package logging assembles the structured slog loggers used across ffkit.
//
// It owns the console/JSON handler selection, centralizes level parsing,
// and exposes run-ID helpers so every line emitted during one CLI
// invocation can be correlated. A no-op logger is provided for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
