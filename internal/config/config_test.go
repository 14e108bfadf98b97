package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seodash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no file and no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, []string{"http://localhost:8080"}, cfg.Security.AllowedOrigins)
				assert.True(t, cfg.Security.RateLimit.Enabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, LogOutputConsole, cfg.Logging.Output)
				assert.Equal(t, "data", cfg.Paths.DataDir)
				assert.Equal(t, "data/exports", cfg.Paths.ExportsDir)
				assert.Equal(t, "A4", cfg.Export.PageSize)
				assert.Equal(t, 10.0, cfg.Export.MarginMM)
				assert.False(t, cfg.Export.CSVBOM)
				assert.Equal(t, TraceExporterNone, cfg.Telemetry.TraceExporter)
			},
		},
		{
			name: "environment variables",
			env: map[string]string{
				"SEODASH_SERVER_PORT":               "9090",
				"SEODASH_SERVER_READ_TIMEOUT":       "30s",
				"SEODASH_SECURITY_ALLOWED_ORIGINS":  "http://example.com,https://example.com",
				"SEODASH_LOGGING_LEVEL":             "debug",
				"SEODASH_EXPORT_PAGE_SIZE":          "Letter",
				"SEODASH_EXPORT_CSV_BOM":            "true",
				"SEODASH_TELEMETRY_TRACE_EXPORTER":  "stdout",
				"SEODASH_TELEMETRY_TRACING_ENABLED": "true",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"http://example.com", "https://example.com"}, cfg.Security.AllowedOrigins)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "Letter", cfg.Export.PageSize)
				assert.True(t, cfg.Export.CSVBOM)
				assert.True(t, cfg.Telemetry.TracingEnabled)
			},
		},
		{
			name: "file overlays defaults",
			file: `
server:
  port: 7070
  request_timeout: 5s
export:
  margin_mm: 15
paths:
  base_dir: /srv/seodash
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7070, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 15.0, cfg.Export.MarginMM)
				assert.Equal(t, "/srv/seodash", cfg.Paths.BaseDir)
				// untouched keys keep defaults
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "A4", cfg.Export.PageSize)
			},
		},
		{
			name: "env wins over file",
			file: "server:\n  port: 7070\n",
			env:  map[string]string{"SEODASH_SERVER_PORT": "9191"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9191, cfg.Server.Port)
			},
		},
		{
			name:    "invalid port number",
			env:     map[string]string{"SEODASH_SERVER_PORT": "99999"},
			wantErr: true,
		},
		{
			name:    "unparsable env value",
			env:     map[string]string{"SEODASH_SERVER_READ_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "invalid log output",
			env:     map[string]string{"SEODASH_LOGGING_OUTPUT": "syslog"},
			wantErr: true,
		},
		{
			name:    "negative margin",
			file:    "export:\n  margin_mm: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "server: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := LoadFrom(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 6060\n")
	t.Setenv("SEODASH_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{name: "zero read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: true},
		{name: "zero write timeout", mutate: func(c *Config) { c.Server.WriteTimeout = 0 }, wantErr: true},
		{name: "cors without origins", mutate: func(c *Config) { c.Security.AllowedOrigins = nil }, wantErr: true},
		{name: "no origins without cors", mutate: func(c *Config) {
			c.Security.AllowedOrigins = nil
			c.Security.EnableCORS = false
		}},
		{name: "zero burst", mutate: func(c *Config) { c.Security.RateLimit.Burst = 0 }, wantErr: true},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.Security.RateLimit.Enabled = false
			c.Security.RateLimit.RPS = 0
		}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "upper case level", mutate: func(c *Config) { c.Logging.Level = "DEBUG" }},
		{name: "empty page size", mutate: func(c *Config) { c.Export.PageSize = "" }, wantErr: true},
		{name: "bad trace exporter", mutate: func(c *Config) { c.Telemetry.TraceExporter = "jaeger" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: 8080}.Addr())
	assert.Equal(t, "127.0.0.1:9000", ServerConfig{Host: "127.0.0.1", Port: 9000}.Addr())
}
