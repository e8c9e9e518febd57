package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md0/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("got %+v, want {test 42 true}", *cfg)
				}
			},
		},
		{
			name: "unknown field ignored",
			data: []byte("name: lax\nextra: 1"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*testConfig).Name; got != "lax" {
					t.Errorf("Name = %q, want %q", got, "lax")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			checkErr(t, err, tt.wantErr)
			if tt.wantErr == nil && tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "known fields only", data: []byte("name: strict\ncount: 10")},
		{name: "unknown field", data: []byte("name: test\nunknown_field: value"), wantErr: errors.New("yamlutil:")},
		{name: "empty data", data: []byte{}, wantErr: yamlutil.ErrNilData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg testConfig
			checkErr(t, yamlutil.UnmarshalStrict(tt.data, &cfg), tt.wantErr)
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var cfg testConfig
	if err := yamlutil.Unmarshal(data, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes with indented sequences
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	v := struct {
		Items []testConfig `yaml:"items"`
	}{Items: []testConfig{{Name: "a", Count: 1}}}

	out, err := yamlutil.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "items:\n  - name: a") {
		t.Errorf("output not indented as expected:\n%s", got)
	}

	var back struct {
		Items []testConfig `yaml:"items"`
	}
	if err := yamlutil.Unmarshal(out, &back); err != nil {
		t.Fatalf("decoding own output: %v", err)
	}
	if len(back.Items) != 1 || back.Items[0].Count != 1 {
		t.Errorf("decoded %+v, want one item with count 1", back.Items)
	}
}

func checkErr(t *testing.T, err, wantErr error) {
	t.Helper()
	if wantErr == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", wantErr)
	}
	if errors.Is(err, wantErr) {
		return
	}
	if !strings.Contains(err.Error(), wantErr.Error()) {
		t.Fatalf("error = %q, want containing %q", err, wantErr)
	}
}
