package filtergraph

import "strings"

// ConcatEntry is one source in a concat demuxer manifest. Duration,
// InPoint, and OutPoint are optional and expressed in milliseconds;
// nil means the directive is omitted.
type ConcatEntry struct {
	File     string
	Duration *int64
	InPoint  *int64
	OutPoint *int64
}

// StringifyConcatFile renders a concat demuxer manifest for the given
// entries, one file per block, with concat-file escaping applied to
// every path. Entries with an empty File are dropped.
func StringifyConcatFile(entries []ConcatEntry) string {
	var b strings.Builder
	b.WriteString("ffconcat version 1.0\n")
	for _, e := range entries {
		if e.File == "" {
			continue
		}
		b.WriteString("file " + EscapeConcatFile(e.File) + "\n")
		if e.Duration != nil {
			b.WriteString("duration " + formatSeconds(*e.Duration) + "\n")
		}
		if e.InPoint != nil {
			b.WriteString("inpoint " + formatSeconds(*e.InPoint) + "\n")
		}
		if e.OutPoint != nil {
			b.WriteString("outpoint " + formatSeconds(*e.OutPoint) + "\n")
		}
	}
	return b.String()
}

// formatSeconds renders a millisecond count as decimal seconds with
// millisecond precision, the unit the concat demuxer directives take.
func formatSeconds(ms int64) string {
	return StringifyValue(float64(ms) / 1000)
}

// TeeOutput is one sink in a tee muxer output specification. Options
// render inside the leading bracket group in declaration order; absent
// values are dropped.
type TeeOutput struct {
	Dest    string
	Options []Param
}

// StringifyTeeOutputs renders tee muxer output components joined with
// "|". Each destination is escaped for the tee-component context;
// options, when present, are rendered key=value and joined with ":"
// inside square brackets.
func StringifyTeeOutputs(outputs []TeeOutput) string {
	parts := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if out.Dest == "" {
			continue
		}
		component := EscapeTeeComponent(out.Dest)
		if opts := StringifyParamList(out.Options); opts != "" {
			component = "[" + opts + "]" + component
		}
		parts = append(parts, component)
	}
	return strings.Join(parts, "|")
}
