package config

type Config struct {
	Sources map[string]SourceConfig `yaml:"sources"`
	Resolve ResolveConfig           `yaml:"resolve"`
	Sinks   map[string]SinkConfig   `yaml:"sinks"`
}

type SourceConfig struct {
	Type        string `yaml:"type"` // file, stdin or docker
	System      string `yaml:"system"`
	Path        string `yaml:"path,omitempty"`
	ContainerID string `yaml:"container_id,omitempty"`
}

type ResolveConfig struct {
	Static map[string]string `yaml:"static"`
	Docker bool              `yaml:"docker"`
	Cache  CacheConfig       `yaml:"cache"`
}

type CacheConfig struct {
	TTL     string `yaml:"ttl"`
	MaxSize int    `yaml:"max_size"`
}

type SinkConfig struct {
	Type   string `yaml:"type"` // stdout or slog
	Pretty bool   `yaml:"pretty"`
	Legacy bool   `yaml:"legacy"` // emit the legacy-shaped projection
}
