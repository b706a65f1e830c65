package config

type Config struct {
	ModsPath string `json:"mods_path,omitempty"`
}

type fileConfig struct {
	ModsPath *string `json:"mods_path"`
}
