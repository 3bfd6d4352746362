package filtergraph

import "regexp"

// Each ffmpeg quoting context backslash-escapes its own fixed character
// set. The sets overlap but are not interchangeable; see the ffmpeg
// utils and filter-graph documentation for the grammar each belongs to.
var (
	filterValuePattern       = regexp.MustCompile(`[\\':]`)
	filterDescriptionPattern = regexp.MustCompile(`[\\'\[\],;]`)
	concatFilePattern        = regexp.MustCompile(`[\\' ]`)
	teeComponentPattern      = regexp.MustCompile(`[\\' |\[\]]`)
)

// EscapeFilterValue escapes a single filter parameter value: backslash,
// single quote, and colon.
func EscapeFilterValue(s string) string {
	return filterValuePattern.ReplaceAllString(s, `\$0`)
}

// EscapeFilterDescription escapes a complete filter description:
// backslash, single quote, square brackets, comma, and semicolon.
func EscapeFilterDescription(s string) string {
	return filterDescriptionPattern.ReplaceAllString(s, `\$0`)
}

// EscapeConcatFile escapes a path or value inside a concat demuxer
// manifest: backslash, single quote, and space.
func EscapeConcatFile(s string) string {
	return concatFilePattern.ReplaceAllString(s, `\$0`)
}

// EscapeTeeComponent escapes one output component of the tee muxer:
// backslash, single quote, space, pipe, and square brackets.
func EscapeTeeComponent(s string) string {
	return teeComponentPattern.ReplaceAllString(s, `\$0`)
}
