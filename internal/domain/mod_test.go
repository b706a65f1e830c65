package domain

import "testing"

func TestManifestLabel(t *testing.T) {
	cases := []struct {
		name     string
		manifest Manifest
		fallback string
		want     string
	}{
		{"name and version", Manifest{Name: "Cool Mod", Version: "1.2"}, "CoolMod", "Cool Mod (v1.2)"},
		{"name only", Manifest{Name: "Cool Mod"}, "CoolMod", "Cool Mod"},
		{"version only", Manifest{Version: "0.3"}, "CoolMod", "CoolMod (v0.3)"},
		{"empty manifest", Manifest{}, "RawFolder", "RawFolder"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.manifest.Label(tc.fallback); got != tc.want {
				t.Fatalf("Label() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplitDisabled(t *testing.T) {
	base, disabled := SplitDisabled("CoolMod.disabled")
	if base != "CoolMod" || !disabled {
		t.Fatalf("SplitDisabled(CoolMod.disabled) = %q, %v", base, disabled)
	}
	base, disabled = SplitDisabled("CoolMod")
	if base != "CoolMod" || disabled {
		t.Fatalf("SplitDisabled(CoolMod) = %q, %v", base, disabled)
	}
}

func TestLabelName(t *testing.T) {
	if got := LabelName("Cool Mod (v1.2)"); got != "Cool Mod" {
		t.Fatalf("LabelName = %q", got)
	}
	if got := LabelName("Cool Mod"); got != "Cool Mod" {
		t.Fatalf("LabelName = %q", got)
	}
}
