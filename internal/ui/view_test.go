package ui

import "testing"

func TestTrimStatusByRunes(t *testing.T) {
	cases := []struct {
		name   string
		status string
		width  int
		want   string
	}{
		{"short untouched", "Ready", 80, "Ready"},
		{"exact width untouched", "abcde", 5, "abcde"},
		{"ascii trimmed", "abcdefgh", 6, "abc..."},
		{"multibyte trimmed on rune boundary", "Gefährten Mod installiert", 10, "Gefährt..."},
		{"tiny width untouched", "abcdefgh", 3, "abcdefgh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := trimStatus(tc.status, tc.width); got != tc.want {
				t.Fatalf("trimStatus(%q, %d) = %q, want %q", tc.status, tc.width, got, tc.want)
			}
		})
	}
}
