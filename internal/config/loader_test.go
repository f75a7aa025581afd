package config

import (
	"testing"
	"time"

	"github.com/goran-ethernal/ChainRelay/pkg/config"
	"github.com/stretchr/testify/require"
)

const testFactory = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func TestLoadFromYAML(t *testing.T) {
	cfg, err := LoadFromYAML("../../config.example.yaml")
	require.NoError(t, err)

	validateConfig(t, cfg, "YAML")
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := LoadFromJSON("../../config.example.json")
	require.NoError(t, err)

	validateConfig(t, cfg, "JSON")
}

func TestLoadFromTOML(t *testing.T) {
	cfg, err := LoadFromTOML("../../config.example.toml")
	require.NoError(t, err)

	validateConfig(t, cfg, "TOML")
}

func TestLoadFromFile_AutoDetect(t *testing.T) {
	for _, path := range []string{
		"../../config.example.yaml",
		"../../config.example.json",
		"../../config.example.toml",
	} {
		t.Run(path, func(t *testing.T) {
			cfg, err := LoadFromFile(path)
			require.NoError(t, err)
			validateConfig(t, cfg, path)
		})
	}
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	_, err := LoadFromFile("config.txt")
	require.ErrorContains(t, err, "unsupported config file format")
}

func TestLoad_WithoutFile(t *testing.T) {
	cfg, err := Load("",
		func(c *config.Config) { c.Chain.FactoryAddress = testFactory },
		func(c *config.Config) { c.Store.Endpoint = "https://store.example.com/graphql" },
	)
	require.NoError(t, err)

	require.Equal(t, config.DefaultRPCURL, cfg.Chain.RPCURL)
	require.Equal(t, testFactory, cfg.Chain.FactoryAddress)
	require.Equal(t, 2*time.Second, cfg.Chain.PollInterval.Duration)
	require.Equal(t, 30*time.Second, cfg.Store.Timeout.Duration)
	require.NotNil(t, cfg.Logging)
	require.Equal(t, "info", cfg.Logging.DefaultLevel)
	require.Nil(t, cfg.Journal)
}

func TestLoad_OverridesWinOverFile(t *testing.T) {
	cfg, err := Load("../../config.example.yaml", func(c *config.Config) {
		c.Chain.RPCURL = "ws://node:8546"
	})
	require.NoError(t, err)
	require.Equal(t, "ws://node:8546", cfg.Chain.RPCURL)
}

func TestLoad_MissingFactoryFails(t *testing.T) {
	_, err := Load("", func(c *config.Config) {
		c.Store.Endpoint = "https://store.example.com/graphql"
	})
	require.ErrorContains(t, err, "chain.factory_address is required")
}

// validateConfig checks that the loaded config has expected values
func validateConfig(t *testing.T, cfg *config.Config, format string) {
	t.Helper()

	require.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL, "[%s] chain.rpc_url", format)
	require.Equal(t, testFactory, cfg.Chain.FactoryAddress, "[%s] chain.factory_address", format)
	require.Equal(t, 2*time.Second, cfg.Chain.PollInterval.Duration, "[%s] chain.poll_interval", format)
	require.NotNil(t, cfg.Chain.Retry, "[%s] chain.retry", format)
	require.Equal(t, 5, cfg.Chain.Retry.MaxAttempts, "[%s] chain.retry.max_attempts", format)

	require.Equal(t, "http://localhost:20002/graphql", cfg.Store.Endpoint, "[%s] store.endpoint", format)
	require.NotEmpty(t, cfg.Store.APIKey, "[%s] store.api_key", format)

	require.NotNil(t, cfg.Journal, "[%s] journal", format)
	require.True(t, cfg.Journal.Enabled, "[%s] journal.enabled", format)
	require.Equal(t, "WAL", cfg.Journal.DB.JournalMode, "[%s] journal.db.journal_mode default", format)
	require.Equal(t, "NORMAL", cfg.Journal.DB.Synchronous, "[%s] journal.db.synchronous default", format)

	require.Equal(t, "debug", cfg.Logging.GetComponentLevel("dispatcher"), "[%s] dispatcher level", format)
	require.Equal(t, "info", cfg.Logging.GetComponentLevel("relay-client"), "[%s] default level", format)

	require.True(t, cfg.Metrics.Enabled, "[%s] metrics.enabled", format)
	require.True(t, cfg.API.Enabled, "[%s] api.enabled", format)
	require.Equal(t, 10*time.Second, cfg.API.ReadTimeout.Duration, "[%s] api.read_timeout default", format)
}

func TestConfigValidation(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Chain: config.ChainConfig{FactoryAddress: testFactory},
			Store: config.StoreConfig{Endpoint: "https://store.example.com/graphql"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *config.Config) {},
		},
		{
			name:    "invalid factory address",
			mutate:  func(cfg *config.Config) { cfg.Chain.FactoryAddress = "0x1234" },
			wantErr: "chain.factory_address",
		},
		{
			name:    "missing store endpoint",
			mutate:  func(cfg *config.Config) { cfg.Store.Endpoint = "" },
			wantErr: "store.endpoint is required",
		},
		{
			name:    "non http store endpoint",
			mutate:  func(cfg *config.Config) { cfg.Store.Endpoint = "ftp://store" },
			wantErr: "http or https",
		},
		{
			name: "unknown logging component",
			mutate: func(cfg *config.Config) {
				cfg.Logging = &config.LoggingConfig{ComponentLevels: map[string]string{"downloader": "info"}}
			},
			wantErr: "unknown component",
		},
		{
			name: "invalid journal mode",
			mutate: func(cfg *config.Config) {
				cfg.Journal = &config.JournalConfig{Enabled: true, DB: config.DatabaseConfig{JournalMode: "FAST"}}
			},
			wantErr: "journal.db.journal_mode",
		},
		{
			name: "metrics path without slash",
			mutate: func(cfg *config.Config) {
				cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "metrics"}
			},
			wantErr: "path must start with '/'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			cfg.ApplyDefaults()

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
