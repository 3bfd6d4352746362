package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Inspect executes ffprobe against the provided path and maps the JSON
// response. An empty binary falls back to "ffprobe" on PATH.
func Inspect(ctx context.Context, binary string, path string) (*Report, error) {
	output, err := Run(ctx, binary, path)
	if err != nil {
		return nil, err
	}
	return ParseJSON(output)
}

// Run executes ffprobe against the provided path and returns the raw
// JSON output without mapping it. Callers that persist probe output
// use this and defer mapping to ParseJSON.
func Run(ctx context.Context, binary string, path string) ([]byte, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-hide_banner",
		"-show_format",
		"-show_streams",
		"-show_chapters",
		"-of", "json",
		"--", path,
	)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("ffprobe inspect: %w", err)
	}

	return output, nil
}

// ParseJSON decodes raw ffprobe JSON output and maps it. The only
// failure mode is undecodable JSON; field-level mapping never fails.
func ParseJSON(data []byte) (*Report, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("ffprobe parse: %w", err)
	}
	return Parse(record), nil
}
