package config

import (
	"strings"
	"testing"
)

func TestUsesPostgres(t *testing.T) {
	tests := []struct {
		storage, events string
		want            bool
	}{
		{StorageFile, EventsNone, false},
		{StoragePostgres, EventsNone, true},
		{StorageSQLite, EventsSQL, true},
		{StorageRedis, EventsMemory, false},
	}
	for _, tt := range tests {
		cfg := &Config{StorageDriver: tt.storage, EventsDriver: tt.events}
		if got := cfg.UsesPostgres(); got != tt.want {
			t.Errorf("UsesPostgres(%s, %s) = %v, want %v", tt.storage, tt.events, got, tt.want)
		}
	}
}

func TestValidateForProduction(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:          EnvProduction,
			StorageDriver:        StorageSQLite,
			LogLevel:             "info",
			SessionAuthKey:       strings.Repeat("a", 32),
			SessionEncryptionKey: strings.Repeat("b", 32),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"odd encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 20) }, "SESSION_ENCRYPTION_KEY"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"memory storage", func(c *Config) { c.StorageDriver = StorageMemory }, "STORAGE_DRIVER=memory"},
		{"redis without url", func(c *Config) { c.StorageDriver = StorageRedis }, "REDIS_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
