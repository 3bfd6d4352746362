package filtergraph

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"00:00", 0},
		{"01:30", 90000},
		{"1:02:03", 3723000},
		{"01:02:03.5", 3723500},
		{"00:00.25", 250},
		{"10:00:00", 36000000},
		{"-00:05", -5000},
		{"-1:00:00.5", -3600500},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ms, ok := ParseTimestamp(tt.input)
			if !ok {
				t.Fatalf("ParseTimestamp(%q) did not match", tt.input)
			}
			if ms != tt.expected {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.input, ms, tt.expected)
			}
		})
	}
}

func TestParseTimestampNoMatch(t *testing.T) {
	inputs := []string{
		"",
		"not-a-time",
		"12",
		"1:2:3:4",
		"01:02.",
		"01:-02",
		"1h30m",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if ms, ok := ParseTimestamp(input); ok {
				t.Errorf("ParseTimestamp(%q) matched with %d, want no match", input, ms)
			}
		})
	}
}
