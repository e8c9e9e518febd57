package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestFirstHeadingText - Title extraction from rendered fragments
// ---------------------------------------------------------------------------

func TestFirstHeadingText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{name: "h1", fragment: "<h1>Title</h1>\n<p>Body</p>", want: "Title"},
		{name: "first of several", fragment: "<p>Intro</p>\n<h2>Second</h2>\n<h1>Later</h1>", want: "Second"},
		{name: "inline markup flattened", fragment: "<h1>Use <code>go test</code> <em>now</em></h1>", want: "Use go test now"},
		{name: "entities decoded", fragment: "<h3>a &lt; b &amp; c</h3>", want: "a < b & c"},
		{name: "nested in container", fragment: "<div><section><h4> Deep </h4></section></div>", want: "Deep"},
		{name: "no heading", fragment: "<p>Only text</p>", want: ""},
		{name: "empty", fragment: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FirstHeadingText(tt.fragment); got != tt.want {
				t.Errorf("FirstHeadingText() = %q, want %q", got, tt.want)
			}
		})
	}
}
