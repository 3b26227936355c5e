package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Host: "", Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", expectError: true, errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-f", "/var/blobs",
				"-d", "/var/lib/readsync.db",
				"-c", "/path/to/config.json",
				"-account", "alice",
				"-password", "reader-pw",
				"-token-sign-key", "jwt_secret",
				"-token-issuer", "test_issuer",
				"-token-duration", "1h",
				"-request-timeout", "30s",
				"-provider", "http",
				"-folder", "/sync",
				"-remote", "https://sync.example.com",
				"-remote-timeout", "5s",
				"-sync-interval", "10m",
				"-once",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "/var/blobs", cfg.Storage.Files.BlobDir)
				assert.Equal(t, "/var/lib/readsync.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "alice", cfg.App.Account)
				assert.Equal(t, "reader-pw", cfg.App.Password)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
				assert.Equal(t, time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "http", cfg.Provider.Type)
				assert.Equal(t, "/sync", cfg.Provider.FolderPath)
				assert.Equal(t, "https://sync.example.com", cfg.Provider.HTTPAddress)
				assert.Equal(t, 5*time.Second, cfg.Provider.RequestTimeout)
				assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
				assert.True(t, cfg.Workers.RunOnce)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Repeatable verifies that parsing twice in one process does
// not panic on flag redefinition.
func TestParseFlags_Repeatable(t *testing.T) {
	_, err := ParseFlags([]string{"-d", "a.db"})
	require.NoError(t, err)
	cfg, err := ParseFlags([]string{"-d", "b.db"})
	require.NoError(t, err)
	assert.Equal(t, "b.db", cfg.Storage.DB.DSN)
}

func TestParseFlags_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-sync-interval", "often"}},
		{name: "unknown flag", args: []string{"-no-such-flag", "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
