package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1,234", 1234},
		{" 1,000,000 ", 1000000},
		{"950", 950},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.in)
		if err != nil {
			t.Fatalf("ParseCount(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseCount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "1.5"} {
		if _, err := ParseCount(in); err == nil {
			t.Errorf("ParseCount(%q): expected error", in)
		}
	}
}

func TestFormatSigFigs(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want string
	}{
		{25, 2, "25"},
		{100.0 / 3, 2, "33"},
		{95, 2, "95"},
		{99.7, 2, "100"},
		{0.12345, 2, "0.12"},
		{4.5678, 3, "4.57"},
		{0, 2, "0"},
		{10, 2, "10"},
	}
	for _, tt := range tests {
		if got := FormatSigFigs(tt.v, tt.n); got != tt.want {
			t.Errorf("FormatSigFigs(%v, %d) = %q, want %q", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("FileHash = %s, want %s", got, want)
	}
}

func TestFileHash_Missing(t *testing.T) {
	if _, err := FileHash("/nonexistent/file"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
