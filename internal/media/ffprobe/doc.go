// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no ffkit-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Report: mapped probe output with format, streams, and chapters
//   - Stream: closed sum over VideoStream, AudioStream, SubtitleStream,
//     and DataStream, each embedding the shared StreamInfo fields
//   - Chapter: chapter boundaries in microseconds
//
// Entry points:
//   - Inspect: executes ffprobe and returns a mapped Report
//   - ParseJSON / Parse: map raw probe output without running anything
//
// Mapping never fails on malformed field values: every numeric field
// degrades to a documented sentinel (0 for times and generic integers,
// -1 for fraction fields) and the original record stays reachable
// through Report.Unwrap for fields the mapping does not cover.
package ffprobe
