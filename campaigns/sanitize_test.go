package campaigns

import "testing"

func TestFlattenHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Hello there",
			expected: "Hello there",
		},
		{
			name:     "whitespace collapsed",
			input:    "  too   many\n\nspaces  ",
			expected: "too many spaces",
		},
		{
			name:     "tags stripped",
			input:    "<p>Hi <b>{name}</b>, your offer is <i>ready</i>.</p>",
			expected: "Hi {name} , your offer is ready .",
		},
		{
			name:     "script dropped",
			input:    "<script>alert('x')</script>Visible text",
			expected: "Visible text",
		},
		{
			name:     "style dropped",
			input:    "<style>body { color: red; }</style>Offer details",
			expected: "Offer details",
		},
		{
			name:     "entities decoded",
			input:    "Terms &amp; conditions apply",
			expected: "Terms & conditions apply",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only markup",
			input:    "<div><script>x()</script></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenHTML(tt.input); got != tt.expected {
				t.Errorf("FlattenHTML(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
