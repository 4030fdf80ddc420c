package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadClient_Defaults(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/gk.db\n")

	cfg, err := LoadClient(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gk.db", cfg.DBPath)
	assert.Equal(t, "local", cfg.Storage)
	assert.Equal(t, MediumHTTP, cfg.Remote.Medium)
	assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 15*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, "gymkeeper", cfg.Remote.Mongo.Database)
}

func TestLoadClient_FileEnvAndFlags(t *testing.T) {
	path := writeConfig(t, `
storage: remote
remote:
  medium: s3
  s3:
    bucket: workouts
    endpoint: http://minio:9000
sync:
  debounce: 500ms
server:
  url: http://file:8080
`)
	t.Setenv("GYMKEEPER_SYNC_TIMEOUT", "3s")
	t.Setenv("GYMKEEPER_SERVER_URL", "http://env:8080")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server.url", "", "")
	require.NoError(t, flags.Parse([]string{"--server.url=http://flag:8080"}))

	cfg, err := LoadClient(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "remote", cfg.Storage)
	assert.Equal(t, MediumS3, cfg.Remote.Medium)
	assert.Equal(t, "workouts", cfg.Remote.S3.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Remote.S3.Endpoint)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 3*time.Second, cfg.Sync.Timeout)
	// Флаг приоритетнее окружения и файла
	assert.Equal(t, "http://flag:8080", cfg.Server.URL)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown storage", content: "storage: cloud\n"},
		{name: "unknown medium", content: "remote:\n  medium: ftp\n"},
		{name: "bad duration", content: "sync:\n  debounce: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadClient(writeConfig(t, tt.content), nil)
			assert.Error(t, err)
		})
	}

	_, err := LoadClient(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadServer(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: 0123456789abcdef0123456789abcdef\n  expiration: 2h\n")

	cfg, err := LoadServer(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.AuthRateLimit.Window)
	assert.EqualValues(t, 5*1024*1024, cfg.MaxDocumentBytes)

	_, err = LoadServer(writeConfig(t, "jwt:\n  secret: short\n"), nil)
	assert.Error(t, err)
}
