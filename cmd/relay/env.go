package main

import (
	"errors"
	"fmt"
	"io/fs"

	internalconfig "github.com/goran-ethernal/ChainRelay/internal/config"
	"github.com/goran-ethernal/ChainRelay/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envRPCURL      = "RPC_URL"
	envStoreURL    = "STORE_URL"
	envStoreAPIKey = "STORE_API_KEY"
)

// loadDotEnv loads path into the process environment. A missing file is not an error
// and variables that are already set are kept.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// envOverrides maps the supported environment variables onto the configuration.
func envOverrides() (internalconfig.Override, error) {
	v := viper.New()

	bindings := map[string]string{
		"chain.rpc_url":  envRPCURL,
		"store.endpoint": envStoreURL,
		"store.api_key":  envStoreAPIKey,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return func(cfg *config.Config) {
		if v.IsSet("chain.rpc_url") {
			cfg.Chain.RPCURL = v.GetString("chain.rpc_url")
		}
		if v.IsSet("store.endpoint") {
			cfg.Store.Endpoint = v.GetString("store.endpoint")
		}
		if v.IsSet("store.api_key") {
			cfg.Store.APIKey = v.GetString("store.api_key")
		}
	}, nil
}

// factoryOverride sets the factory address given on the command line.
func factoryOverride(address string) internalconfig.Override {
	return func(cfg *config.Config) {
		cfg.Chain.FactoryAddress = address
	}
}
