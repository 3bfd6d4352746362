package ffprobe

// StreamInfo carries the fields shared by every stream variant.
type StreamInfo struct {
	Index         uint32
	CodecName     string
	CodecLongName string
	// CodecTag is empty when the container reported no tag or the
	// all-zero sentinel.
	CodecTag string
	// Start and Duration are whole milliseconds; 0 when the source
	// field was absent or unparsable.
	Start    int64
	Duration int64
	BitRate  int64
	Tags     map[string]string
}

// Stream is the closed set of stream variants produced by a probe.
// The only implementations are VideoStream, AudioStream,
// SubtitleStream, and DataStream; a type switch over those four is
// exhaustive.
type Stream interface {
	// Common returns the fields shared by every variant.
	Common() *StreamInfo
	sealed()
}

// VideoStream describes one video stream.
type VideoStream struct {
	StreamInfo
	Profile        string
	Width          uint32
	Height         uint32
	Level          int64
	PixelFormat    string
	ColorRange     string
	ColorSpace     string
	ColorPrimaries string
	ColorTransfer  string
	ChromaLocation string
	FieldOrder     string
	// FrameRate and AvgFrameRate are -1 when the source fraction was
	// malformed or absent.
	FrameRate    float64
	AvgFrameRate float64
}

// AudioStream describes one audio stream.
type AudioStream struct {
	StreamInfo
	Profile          string
	SampleFormat     string
	SampleRate       int64
	Channels         int64
	ChannelLayout    string
	BitsPerRawSample int64
}

// SubtitleStream describes one subtitle stream.
type SubtitleStream struct {
	StreamInfo
}

// DataStream is the catch-all for any stream whose declared type is
// not video, audio, or subtitle.
type DataStream struct {
	StreamInfo
	CodecType string
}

func (s *VideoStream) Common() *StreamInfo    { return &s.StreamInfo }
func (s *AudioStream) Common() *StreamInfo    { return &s.StreamInfo }
func (s *SubtitleStream) Common() *StreamInfo { return &s.StreamInfo }
func (s *DataStream) Common() *StreamInfo     { return &s.StreamInfo }

func (*VideoStream) sealed()    {}
func (*AudioStream) sealed()    {}
func (*SubtitleStream) sealed() {}
func (*DataStream) sealed()     {}

// Chapter describes one chapter. Start and End are whole microseconds,
// a deliberately different unit from stream timestamps.
type Chapter struct {
	ID    uint32
	Start int64
	End   int64
	Tags  map[string]string
}

// Report is the mapped output of a single probe.
type Report struct {
	// Format is the container format identifier (format_name).
	Format   string
	Start    int64
	Duration int64
	BitRate  int64
	Score    int64
	Tags     map[string]string
	Streams  []Stream
	Chapters []Chapter

	raw map[string]any
}

// Unwrap returns the original untouched probe record for access to
// fields the mapping does not cover. It is the only way to reach the
// raw record.
func (r *Report) Unwrap() map[string]any {
	return r.raw
}

// Parse maps one decoded probe record into a Report. It never fails:
// missing or malformed fields degrade to their per-field sentinels.
func Parse(record map[string]any) *Report {
	format, _ := record["format"].(map[string]any)
	report := &Report{
		Format:   toText(format["format_name"]),
		Start:    toMilliseconds(format["start_time"]),
		Duration: toMilliseconds(format["duration"]),
		BitRate:  toInt(format["bit_rate"]),
		Score:    toInt(format["probe_score"]),
		Tags:     toTags(format["tags"]),
		raw:      record,
	}

	streams, _ := record["streams"].([]any)
	for _, entry := range streams {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		report.Streams = append(report.Streams, parseStream(m))
	}

	chapters, _ := record["chapters"].([]any)
	for _, entry := range chapters {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		report.Chapters = append(report.Chapters, Chapter{
			ID:    toUint32(m["id"]),
			Start: toMicroseconds(m["start_time"]),
			End:   toMicroseconds(m["end_time"]),
			Tags:  toTags(m["tags"]),
		})
	}

	return report
}

func parseStream(m map[string]any) Stream {
	info := StreamInfo{
		Index:         toUint32(m["index"]),
		CodecName:     toText(m["codec_name"]),
		CodecLongName: toText(m["codec_long_name"]),
		CodecTag:      toCodecTag(m["codec_tag_string"]),
		Start:         toMilliseconds(m["start_time"]),
		Duration:      toMilliseconds(m["duration"]),
		BitRate:       toInt(m["bit_rate"]),
		Tags:          toTags(m["tags"]),
	}

	// Variant dispatch is exact: anything outside the three known
	// media types, including an absent codec_type, is a data stream.
	switch codecType := toText(m["codec_type"]); codecType {
	case "video":
		return &VideoStream{
			StreamInfo:     info,
			Profile:        toProfile(m["profile"]),
			Width:          toUint32(m["width"]),
			Height:         toUint32(m["height"]),
			Level:          toInt(m["level"]),
			PixelFormat:    toText(m["pix_fmt"]),
			ColorRange:     toText(m["color_range"]),
			ColorSpace:     toText(m["color_space"]),
			ColorPrimaries: toText(m["color_primaries"]),
			ColorTransfer:  toText(m["color_transfer"]),
			ChromaLocation: toText(m["chroma_location"]),
			FieldOrder:     toText(m["field_order"]),
			FrameRate:      toFraction(m["r_frame_rate"]),
			AvgFrameRate:   toFraction(m["avg_frame_rate"]),
		}
	case "audio":
		return &AudioStream{
			StreamInfo:       info,
			Profile:          toProfile(m["profile"]),
			SampleFormat:     toText(m["sample_fmt"]),
			SampleRate:       toInt(m["sample_rate"]),
			Channels:         toInt(m["channels"]),
			ChannelLayout:    toText(m["channel_layout"]),
			BitsPerRawSample: toInt(m["bits_per_raw_sample"]),
		}
	case "subtitle":
		return &SubtitleStream{StreamInfo: info}
	default:
		return &DataStream{StreamInfo: info, CodecType: codecType}
	}
}
