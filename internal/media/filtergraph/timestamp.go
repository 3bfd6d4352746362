package filtergraph

import (
	"regexp"
	"strconv"
)

var timestampPattern = regexp.MustCompile(`^(-)?(?:(\d+):)?(\d+):(\d+)(?:\.(\d+))?$`)

// ParseTimestamp parses an ffmpeg-style timestamp of the form
// [-][HH:]MM:SS[.fraction] into signed milliseconds. The second return
// value is false when the text does not match the grammar at all; a
// parsable timestamp of zero is distinct from that absence.
//
// The fractional digits are read as 0.<digits> and multiplied by 1000.
// This reproduces the behavior of the tool this package interoperates
// with; it is not a general decimal-seconds conversion and rounds
// nothing.
func ParseTimestamp(s string) (int64, bool) {
	match := timestampPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}

	var ms int64
	if match[2] != "" {
		hours, _ := strconv.ParseInt(match[2], 10, 64)
		ms += hours * 3600000
	}
	minutes, _ := strconv.ParseInt(match[3], 10, 64)
	seconds, _ := strconv.ParseInt(match[4], 10, 64)
	ms += minutes*60000 + seconds*1000

	if match[5] != "" {
		frac, _ := strconv.ParseFloat("0."+match[5], 64)
		ms += int64(frac * 1000)
	}

	if match[1] == "-" {
		ms = -ms
	}
	return ms, true
}
