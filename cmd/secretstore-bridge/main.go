// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChainSafe/gossamer-secretstore/config"
	"github.com/ChainSafe/gossamer-secretstore/dot/queue"
	"github.com/ChainSafe/gossamer-secretstore/dot/service"
	"github.com/ChainSafe/gossamer-secretstore/dot/substrate"
	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/ChainSafe/gossamer-secretstore/internal/metrics"
	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli"
)

// substrateNetworkID is the generic substrate SS58 address format.
const substrateNetworkID = 42

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	app = cli.NewApp()

	exportCommand = cli.Command{
		Action:    FixFlagOrder(exportAction),
		Name:      "export",
		Usage:     "Export configuration values to TOML configuration file",
		ArgsUsage: "",
		Flags:     RootFlags,
		Category:  "EXPORT",
		Description: "The export command exports the configuration values to a TOML configuration file.\n" +
			"\tUsage: secretstore-bridge export --config config.toml --self-id 0x...",
	}
)

func init() {
	app.Action = secretStoreBridgeAction
	app.Name = "secretstore-bridge"
	app.Usage = "Secret store substrate bridge"
	app.Author = "ChainSafe Systems 2021"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		exportCommand,
	}
	app.Flags = RootFlags
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exportAction writes the configuration made of the configuration
// file and flags values to the configuration file.
func exportAction(ctx *cli.Context) error {
	path := ctx.String(ConfigFlag.Name)
	if path == "" {
		return errNoConfigPath
	}

	cfg, err := createConfigIfExists(ctx, path)
	if err != nil {
		return err
	}

	err = config.Export(cfg, path)
	if err != nil {
		return err
	}

	logger.Info("exported configuration to " + path)
	return nil
}

// secretStoreBridgeAction runs the bridge until it is interrupted.
func secretStoreBridgeAction(ctx *cli.Context) error {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("%w: %s", errUnknownCommand, arguments[0])
	}

	cfg, err := createConfig(ctx)
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	levels, err := parseLogLevels(cfg.Log, cfg.Global.LogLvl)
	if err != nil {
		return err
	}
	setupLogger(levels.global)
	substrate.SetLogLevel(levels.substrate)
	queue.SetLogLevel(levels.queue)
	metrics.SetLogLevel(levels.metrics)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(runCtx, cfg, levels)
}

func run(ctx context.Context, cfg *config.Config, levels logLevels) error {
	api, err := gsrpc.NewSubstrateAPI(cfg.Chain.Endpoint)
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %w", cfg.Chain.Endpoint, err)
	}

	cacheConfig := substrate.DefaultMetadataCacheConfig
	cacheConfig.MaxCost = cfg.Chain.MetadataCacheSize
	cacheConfig.NumCounters = 10 * cfg.Chain.MetadataCacheSize
	metadata, err := substrate.NewMetadataCache(api.Client, cacheConfig)
	if err != nil {
		return err
	}

	blockchain, err := substrate.NewBlockchain(api.Client, metadata)
	if err != nil {
		return err
	}

	signer, err := signature.KeyringPairFromSecret(cfg.Chain.Signer, substrateNetworkID)
	if err != nil {
		return fmt.Errorf("cannot create signer: %w", err)
	}

	transactionPool, err := substrate.NewTransactionPool(api.Client, metadata, signer)
	if err != nil {
		return err
	}

	taskQueue, err := queue.NewQueue(&redis.Options{
		Addr:     cfg.Queue.Address,
		Password: cfg.Queue.Password,
		DB:       cfg.Queue.DB,
	}, cfg.Queue.Name)
	if err != nil {
		return err
	}
	defer func() {
		if err := taskQueue.Close(); err != nil {
			logger.Warnf("failed to close task queue: %s", err)
		}
	}()

	err = taskQueue.Ping(ctx)
	if err != nil {
		return fmt.Errorf("cannot reach task queue at %s: %w", cfg.Queue.Address, err)
	}

	collectors, err := metrics.NewCollectors(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		server := metrics.NewServer(cfg.Metrics.Address, prometheus.DefaultGatherer)
		err = server.Start()
		if err != nil {
			return fmt.Errorf("cannot start metrics server: %w", err)
		}
		defer func() {
			if err := server.Stop(); err != nil {
				logger.Warnf("failed to stop metrics server: %s", err)
			}
		}()
	}

	self := common.HexToAddress(cfg.Global.SelfID)

	runtime, err := service.NewService(service.Config{
		LogLvl:               levels.service,
		Self:                 self,
		Queue:                taskQueue,
		PendingTasksInterval: cfg.Service.PendingTasksInterval,
		MaxPendingTasks:      cfg.Service.MaxPendingTasks,
		ResultsTimeout:       time.Duration(cfg.Service.ResultsTimeout) * time.Second,
		Metrics:              collectors,
	})
	if err != nil {
		return err
	}

	subscription, err := api.RPC.Chain.SubscribeFinalizedHeads()
	if err != nil {
		return fmt.Errorf("cannot subscribe to finalized heads: %w", err)
	}

	blocks := substrate.FinalizedBlocks(ctx, api.Client, subscription)

	err = secretstore.StartService(ctx, secretstore.Config{
		LogLvl:  levels.bridge,
		Self:    self,
		Metrics: collectors,
	}, blockchain, transactionPool, runtime, blocks)
	if err != nil && ctx.Err() == nil {
		return err
	}

	logger.Info("secret store bridge stopped")
	return nil
}
