// Package probecache persists raw ffprobe JSON keyed by file identity so
// repeated inspections of unchanged files skip spawning ffprobe.
//
// Entries are keyed by absolute path and validated against the file's
// size and modification time on every read; a file that changed since it
// was cached is a miss, never stale data. Pruning takes a cross-process
// file lock so concurrent CLI invocations do not race each other.
package probecache
