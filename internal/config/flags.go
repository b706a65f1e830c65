package config

import "flag"

// SessionOverrides carries command-line values that apply to the current
// run only. They are never written back to the config file.
type SessionOverrides struct {
	ModsPath string
}

func ParseFlags() SessionOverrides {
	modsPath := flag.String("mods", "", "Mods directory for this session (not persisted)")
	flag.Parse()

	return SessionOverrides{ModsPath: *modsPath}
}

// Apply returns the mods path the session should start from: the override
// when given, otherwise the persisted configured path.
func (overrides SessionOverrides) Apply(cfg Config) string {
	if overrides.ModsPath != "" {
		return overrides.ModsPath
	}
	return cfg.ModsPath
}
