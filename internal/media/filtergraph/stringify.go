package filtergraph

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Param is a single filter parameter. A Param with an empty Key renders
// as a bare positional value; otherwise it renders as key=value. Keys
// are emitted verbatim, without escaping or validation.
type Param struct {
	Key   string
	Value any
}

// StringifyValue returns the canonical text form of a scalar value.
// time.Time values are rendered as ISO-8601 UTC with millisecond
// precision; everything else uses its natural Go text form.
func StringifyValue(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format("2006-01-02T15:04:05.000") + "Z"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// StringifyValueList renders a positional parameter list: nil entries
// are dropped, the survivors are stringified, filter-value-escaped, and
// joined with ":". Order is preserved.
func StringifyValueList(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		parts = append(parts, EscapeFilterValue(StringifyValue(v)))
	}
	return strings.Join(parts, ":")
}

// StringifyParamList renders a keyed parameter list: params with a nil
// Value are dropped, the surviving values are stringified and
// filter-value-escaped, each rendered as key=value (or as a bare value
// when Key is empty), and joined with ":" in declaration order.
func StringifyParamList(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		value := EscapeFilterValue(StringifyValue(p.Value))
		if p.Key == "" {
			parts = append(parts, value)
			continue
		}
		parts = append(parts, p.Key+"="+value)
	}
	return strings.Join(parts, ":")
}

// StringifyFilterDescription renders a named filter with its parameters.
// A nil parameter list, or one whose entries are all absent, yields the
// bare name. The rendered parameter text is escaped for the
// filter-description context as a whole; the "=" joining name and
// parameters is never escaped.
func StringifyFilterDescription(name string, params []Param) string {
	if params == nil {
		return name
	}
	opts := StringifyParamList(params)
	if opts == "" {
		return name
	}
	return name + "=" + EscapeFilterDescription(opts)
}
