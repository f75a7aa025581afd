package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goran-ethernal/ChainRelay/internal/common"
	internalconfig "github.com/goran-ethernal/ChainRelay/internal/config"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/journal"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	"github.com/goran-ethernal/ChainRelay/internal/metrics"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	"github.com/goran-ethernal/ChainRelay/internal/rpc"
	"github.com/goran-ethernal/ChainRelay/internal/subscription"
	"github.com/goran-ethernal/ChainRelay/pkg/api"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"github.com/spf13/cobra"
)

const stopTimeout = 10 * time.Second

func runRelay(cmd *cobra.Command, args []string) error {
	factory, err := common.ParseAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid factory address: %w", err)
	}

	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	fromEnv, err := envOverrides()
	if err != nil {
		return err
	}

	cfg, err := internalconfig.Load(configPath, fromEnv, factoryOverride(factory.Hex()))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf(banner, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewComponentLoggerFromConfig(common.ComponentRelay, cfg.Logging)
	logger.SetDefaultLogger(log)
	defer log.Close() //nolint:errcheck

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics, log)
		if err := metricsServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()

			if err := metricsServer.Stop(stopCtx); err != nil {
				log.Warnf("failed to stop metrics server: %v", err)
			}
		}()
	}

	log.Infof("connecting to %s", cfg.Chain.RPCURL)
	chain, err := rpc.NewClient(ctx, cfg.Chain, logger.NewComponentLoggerFromConfig(common.ComponentRPC, cfg.Logging))
	if err != nil {
		metrics.ComponentHealthSet(common.ComponentRPC, false)
		return fmt.Errorf("failed to connect to chain: %w", err)
	}
	defer chain.Close()
	metrics.ComponentHealthSet(common.ComponentRPC, true)

	var (
		failures pkgrelay.FailureRecorder
		lister   api.FailureLister
	)
	if cfg.Journal != nil && cfg.Journal.Enabled {
		j, err := journal.Open(cfg.Journal.DB, logger.NewComponentLoggerFromConfig(common.ComponentJournal, cfg.Logging))
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer j.Close()

		failures, lister = j, j
	}

	store := relay.NewClient(
		cfg.Store,
		failures,
		logger.NewComponentLoggerFromConfig(common.ComponentRelayClient, cfg.Logging),
	)

	decoder, err := contracts.NewDecoder()
	if err != nil {
		return fmt.Errorf("failed to load contract ABIs: %w", err)
	}

	manager := subscription.NewManager(
		factory,
		chain,
		store,
		decoder,
		logger.NewComponentLoggerFromConfig(common.ComponentSubscriptionManager, cfg.Logging),
		logger.NewComponentLoggerFromConfig(common.ComponentDispatcher, cfg.Logging),
	)
	defer manager.Close()

	if cfg.API != nil && cfg.API.Enabled {
		apiServer := api.NewServer(
			cfg.API,
			manager,
			lister,
			logger.NewComponentLoggerFromConfig(common.ComponentAPI, cfg.Logging),
		)
		go func() {
			if err := apiServer.Start(ctx); err != nil {
				log.Errorf("API server error: %v", err)
			}
		}()
	}

	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start relay: %w", err)
	}

	<-ctx.Done()
	log.Info("shutting down, waiting for in-flight submissions")

	return nil
}
