package main

import (
	"bytes"
	"strings"
	"testing"

	"ffkit/internal/media/ffprobe"
)

func sampleReport(t *testing.T) *ffprobe.Report {
	t.Helper()
	report, err := ffprobe.ParseJSON([]byte(`{
		"streams": [
			{
				"index": 0,
				"codec_name": "h264",
				"codec_type": "video",
				"width": 1920,
				"height": 1080,
				"pix_fmt": "yuv420p",
				"r_frame_rate": "25/1",
				"bit_rate": "5000000",
				"tags": {"language": "eng"}
			},
			{
				"index": 1,
				"codec_name": "aac",
				"codec_type": "audio",
				"sample_rate": "48000",
				"channel_layout": "stereo",
				"tags": {"language": "jpn"}
			}
		],
		"chapters": [
			{"id": 0, "start_time": "0", "end_time": "60", "tags": {"title": "Intro"}}
		],
		"format": {
			"format_name": "matroska,webm",
			"duration": "3600.5",
			"bit_rate": "6000000",
			"probe_score": 100,
			"tags": {"title": "Feature"}
		}
	}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	return report
}

func TestRenderReportPlain(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, "movie.mkv", sampleReport(t))
	out := buf.String()

	for _, want := range []string{
		"Format:   matroska,webm",
		"Duration: 1:00:00",
		"Bitrate:  6.0 Mb/s",
		"Title:    Feature",
		"1920x1080 yuv420p 25.000 fps",
		"48000 Hz stereo",
		"English",
		"Japanese",
		"Chapter 0: 0:00 - 1:00  Intro",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
	// A bytes.Buffer is not a terminal, so output stays plain.
	if strings.Contains(out, "─") {
		t.Error("expected plain output for non-terminal writer")
	}
}

func TestStreamKind(t *testing.T) {
	report := ffprobe.Parse(map[string]any{
		"streams": []any{
			map[string]any{"codec_type": "video"},
			map[string]any{"codec_type": "audio"},
			map[string]any{"codec_type": "subtitle"},
			map[string]any{"codec_type": "attachment"},
			map[string]any{},
		},
	})
	expected := []string{"video", "audio", "subtitle", "attachment", "data"}
	for i, stream := range report.Streams {
		if got := streamKind(stream); got != expected[i] {
			t.Errorf("streamKind(%d) = %q, want %q", i, got, expected[i])
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"und", ""},
		{"eng", "English"},
		{"en", "English"},
		{"jpn", "Japanese"},
		{"not a code", "not a code"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := languageName(tt.input); got != tt.expected {
				t.Errorf("languageName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatDuration(0); got != "unknown" {
		t.Errorf("formatDuration(0) = %q", got)
	}
	if got := formatDuration(90_500); got != "1:30" {
		t.Errorf("formatDuration(90500) = %q", got)
	}
	if got := formatDuration(3_723_000); got != "1:02:03" {
		t.Errorf("formatDuration(3723000) = %q", got)
	}
	if got := formatBitRate(0); got != "unknown" {
		t.Errorf("formatBitRate(0) = %q", got)
	}
	if got := formatBitRate(192_000); got != "192 kb/s" {
		t.Errorf("formatBitRate(192000) = %q", got)
	}
	if got := formatBitRate(6_873_456); got != "6.9 Mb/s" {
		t.Errorf("formatBitRate(6873456) = %q", got)
	}
}
