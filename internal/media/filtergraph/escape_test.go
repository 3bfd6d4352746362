package filtergraph

import "testing"

func TestEscapeFilterValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a'b:c\\d", "a\\'b\\:c\\\\d"},
		{"no[brackets],or;semis", "no[brackets],or;semis"},
		{"über:größe", "über\\:größe"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeFilterValue(tt.input); got != tt.expected {
				t.Errorf("EscapeFilterValue(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeFilterDescription(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a[b],c;d", "a\\[b\\]\\,c\\;d"},
		// colon and equals are not part of the description set
		{"w=100:h=200", "w=100:h=200"},
		{"back\\slash'quote", "back\\\\slash\\'quote"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeFilterDescription(tt.input); got != tt.expected {
				t.Errorf("EscapeFilterDescription(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeConcatFile(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		// space is escaped, dot is not
		{"/media/My Movie.mkv", "/media/My\\ Movie.mkv"},
		{"it's", "it\\'s"},
		{"pipe|and[brackets]", "pipe|and[brackets]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeConcatFile(tt.input); got != tt.expected {
				t.Errorf("EscapeConcatFile(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeTeeComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"out.mp4", "out.mp4"},
		{"a b|c[d]", "a\\ b\\|c\\[d\\]"},
		{"quote'back\\", "quote\\'back\\\\"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeTeeComponent(tt.input); got != tt.expected {
				t.Errorf("EscapeTeeComponent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
