package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sources:
  app:
    type: file
    system: my-api
    path: /var/log/app.log
resolve:
  static:
    "*.redis.svc": redis
  cache:
    ttl: 10s
    max_size: 64
sinks:
  out:
    type: stdout
    legacy: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	src, ok := cfg.Sources["app"]
	if !ok || src.Type != "file" || src.Path != "/var/log/app.log" {
		t.Errorf("unexpected source: %+v", src)
	}
	if cfg.Resolve.Static["*.redis.svc"] != "redis" {
		t.Errorf("resolve static map not loaded: %+v", cfg.Resolve)
	}
	if !cfg.Sinks["out"].Legacy {
		t.Error("sink legacy flag not loaded")
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("BRIDGE_LOG_PATH", "/tmp/expanded.log")
	path := writeConfig(t, `
sources:
  app:
    type: file
    path: ${BRIDGE_LOG_PATH}
sinks:
  out:
    type: stdout
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.Sources["app"].Path; got != "/tmp/expanded.log" {
		t.Errorf("path = %q; want env-expanded value", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			"valid",
			Config{
				Sources: map[string]SourceConfig{"in": {Type: "stdin"}},
				Sinks:   map[string]SinkConfig{"out": {Type: "stdout"}},
			},
			false,
		},
		{
			"no sources",
			Config{Sinks: map[string]SinkConfig{"out": {Type: "stdout"}}},
			true,
		},
		{
			"no sinks",
			Config{Sources: map[string]SourceConfig{"in": {Type: "stdin"}}},
			true,
		},
		{
			"file source without path",
			Config{
				Sources: map[string]SourceConfig{"in": {Type: "file"}},
				Sinks:   map[string]SinkConfig{"out": {Type: "stdout"}},
			},
			true,
		},
		{
			"docker source without container",
			Config{
				Sources: map[string]SourceConfig{"in": {Type: "docker"}},
				Sinks:   map[string]SinkConfig{"out": {Type: "stdout"}},
			},
			true,
		},
		{
			"unknown sink type",
			Config{
				Sources: map[string]SourceConfig{"in": {Type: "stdin"}},
				Sinks:   map[string]SinkConfig{"out": {Type: "kafka"}},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
