// Package filtergraph serializes values into the textual mini-languages
// understood by ffmpeg: filter-graph descriptions, concat demuxer
// manifests, and tee muxer output specifications.
//
// This package has no ffkit-specific dependencies and could be extracted
// as a standalone library.
//
// Every function is pure and total: malformed or absent input degrades to
// a documented fallback (dropped entry, empty string, or a false ok flag)
// rather than an error. The four escape functions cover four distinct
// quoting contexts whose character sets happen to overlap; they are kept
// separate because ffmpeg's grammars treat them independently.
package filtergraph
