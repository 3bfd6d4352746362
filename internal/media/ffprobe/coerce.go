package ffprobe

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ffprobe's JSON mode emits most numbers as strings and omits fields
// freely, so every value goes through a loose numeric coercion first.
// The helpers below each cover one semantic field type; their fallback
// values are load-bearing sentinels (see the package comment), not
// placeholders to be "fixed".

// toNumber coerces a decoded JSON value to a float, NaN when it has no
// numeric reading.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

// toText coerces a decoded JSON value to its text form. Absent values
// become the empty string.
func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// toUint32 forces a value into the unsigned 32-bit range with modular
// wraparound, so negative and out-of-range inputs wrap rather than
// error. Non-finite inputs map to 0.
func toUint32(v any) uint32 {
	f := toNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}

// toInt floors a numeric coercion; values with no numeric reading
// become 0.
func toInt(v any) int64 {
	f := toNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Floor(f))
}

// toMilliseconds converts a seconds-valued field to whole milliseconds.
// Unparsable time fields normalize to 0, never to an error.
func toMilliseconds(v any) int64 {
	f := toNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Floor(f * 1000))
}

// toMicroseconds converts a seconds-valued field to whole microseconds.
// Chapters carry microsecond boundaries while streams carry
// milliseconds; the unit asymmetry is part of the contract.
func toMicroseconds(v any) int64 {
	f := toNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Floor(f * 1e6))
}

// toFraction parses a "numerator/denominator" field into its quotient.
// A missing part or a part with no numeric reading yields -1, the
// malformed-fraction sentinel, distinct from the 0 used elsewhere. A
// zero denominator yields signed infinity and is not special-cased.
func toFraction(v any) float64 {
	parts := strings.Split(toText(v), "/")
	if len(parts) != 2 {
		return -1
	}
	num := toNumber(parts[0])
	den := toNumber(parts[1])
	if math.IsNaN(num) || math.IsNaN(den) {
		return -1
	}
	return num / den
}

// emptyCodecTag is ffprobe's rendering of an all-zero container tag.
const emptyCodecTag = "[0][0][0][0]"

// toCodecTag normalizes a codec tag: the all-zero sentinel and empty
// values both mean "absent"; anything else is kept verbatim.
func toCodecTag(v any) string {
	tag := toText(v)
	if tag == emptyCodecTag {
		return ""
	}
	return tag
}

// toProfile keeps a profile only when the source value is present and
// non-empty, lower-cased.
func toProfile(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if !t {
			return ""
		}
	case float64:
		if t == 0 {
			return ""
		}
	}
	return strings.ToLower(toText(v))
}

// toTags maps a nested tag object to string pairs with lower-cased
// keys. Keys that collide after lowercasing overwrite in sorted source
// order, keeping the result deterministic.
func toTags(v any) map[string]string {
	source, _ := v.(map[string]any)
	tags := make(map[string]string, len(source))
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		tags[strings.ToLower(key)] = toText(source[key])
	}
	return tags
}
