package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"ffkit/internal/media/ffprobe"
)

var streamTableHeaders = []string{"#", "Type", "Codec", "Details", "Language", "Bitrate"}

func renderReport(w io.Writer, path string, report *ffprobe.Report) {
	fmt.Fprintf(w, "File:     %s\n", path)
	fmt.Fprintf(w, "Format:   %s\n", report.Format)
	fmt.Fprintf(w, "Duration: %s\n", formatDuration(report.Duration))
	fmt.Fprintf(w, "Bitrate:  %s\n", formatBitRate(report.BitRate))
	if title, ok := report.Tags["title"]; ok && title != "" {
		fmt.Fprintf(w, "Title:    %s\n", title)
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(report.Streams))
	for _, stream := range report.Streams {
		rows = append(rows, streamRow(stream))
	}
	if writerIsTerminal(w) {
		aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
		fmt.Fprintln(w, renderTable(streamTableHeaders, rows, aligns))
	} else {
		for _, row := range rows {
			fmt.Fprintln(w, strings.Join(row, "  "))
		}
	}

	if len(report.Chapters) > 0 {
		fmt.Fprintln(w)
		for _, chapter := range report.Chapters {
			title := chapter.Tags["title"]
			fmt.Fprintf(w, "Chapter %d: %s - %s  %s\n",
				chapter.ID,
				formatTimestamp(chapter.Start/1000),
				formatTimestamp(chapter.End/1000),
				title,
			)
		}
	}
}

func streamRow(stream ffprobe.Stream) []string {
	info := stream.Common()
	return []string{
		strconv.FormatUint(uint64(info.Index), 10),
		streamKind(stream),
		info.CodecName,
		streamDetails(stream),
		languageName(info.Tags["language"]),
		formatBitRate(info.BitRate),
	}
}

func streamKind(stream ffprobe.Stream) string {
	switch s := stream.(type) {
	case *ffprobe.VideoStream:
		return "video"
	case *ffprobe.AudioStream:
		return "audio"
	case *ffprobe.SubtitleStream:
		return "subtitle"
	case *ffprobe.DataStream:
		if s.CodecType != "" {
			return s.CodecType
		}
		return "data"
	default:
		return "data"
	}
}

func streamDetails(stream ffprobe.Stream) string {
	switch s := stream.(type) {
	case *ffprobe.VideoStream:
		details := fmt.Sprintf("%dx%d", s.Width, s.Height)
		if s.PixelFormat != "" {
			details += " " + s.PixelFormat
		}
		if s.FrameRate > 0 {
			details += fmt.Sprintf(" %.3f fps", s.FrameRate)
		}
		return details
	case *ffprobe.AudioStream:
		details := fmt.Sprintf("%d Hz", s.SampleRate)
		if s.ChannelLayout != "" {
			details += " " + s.ChannelLayout
		} else if s.Channels > 0 {
			details += fmt.Sprintf(" %dch", s.Channels)
		}
		return details
	default:
		return ""
	}
}

// languageName renders a stream language tag as a display name,
// falling back to the tag itself when it is not a recognizable code.
func languageName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || code == "und" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

// formatDuration treats zero as the unknown-duration sentinel.
func formatDuration(ms int64) string {
	if ms <= 0 {
		return "unknown"
	}
	return formatTimestamp(ms)
}

func formatTimestamp(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func formatBitRate(bps int64) string {
	if bps <= 0 {
		return "unknown"
	}
	if bps >= 1_000_000 {
		return fmt.Sprintf("%.1f Mb/s", float64(bps)/1_000_000)
	}
	if bps >= 1_000 {
		return fmt.Sprintf("%d kb/s", bps/1_000)
	}
	return fmt.Sprintf("%d b/s", bps)
}

// reportView is the JSON shape of a mapped report. Stream variants
// carry a type discriminator alongside their inline fields.
func reportView(report *ffprobe.Report) any {
	type streamView struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}
	streams := make([]streamView, 0, len(report.Streams))
	for _, stream := range report.Streams {
		streams = append(streams, streamView{Type: streamKind(stream), Data: stream})
	}
	return struct {
		Format   string            `json:"format"`
		Start    int64             `json:"start_ms"`
		Duration int64             `json:"duration_ms"`
		BitRate  int64             `json:"bit_rate"`
		Score    int64             `json:"probe_score"`
		Tags     map[string]string `json:"tags,omitempty"`
		Streams  []streamView      `json:"streams"`
		Chapters []ffprobe.Chapter `json:"chapters,omitempty"`
	}{
		Format:   report.Format,
		Start:    report.Start,
		Duration: report.Duration,
		BitRate:  report.BitRate,
		Score:    report.Score,
		Tags:     report.Tags,
		Streams:  streams,
		Chapters: report.Chapters,
	}
}
