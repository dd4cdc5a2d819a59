package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:3000", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"json:1","online_check_interval":"10s"}`), 0o600))

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{"defaults", nil, &Config{ServerEndpointAddr: "127.0.0.1:3000", OnlineCheckInterval: 3 * time.Second}},
		{"json", []string{"-c", path}, &Config{ServerEndpointAddr: "json:1", OnlineCheckInterval: 10 * time.Second}},
		{"flags beat json", []string{"-config", path, "-a", "flag:2", "-i", "1"}, &Config{ServerEndpointAddr: "flag:2", OnlineCheckInterval: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, cmp.Diff(tt.want, load(tt.args)))
		})
	}
}

func TestLoad_Panics(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))

	require.Panics(t, func() { load([]string{"-c", bad}) })
	require.Panics(t, func() { load([]string{"-i", "often"}) })
}
