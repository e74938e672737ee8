// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

var (
	// ConfigFlag is the TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag is the global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
)

// Chain flags
var (
	// EndpointFlag is the substrate node websocket endpoint
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "Substrate node websocket endpoint, eg. ws://127.0.0.1:9944",
	}
	// SelfIDFlag is the key server address
	SelfIDFlag = cli.StringFlag{
		Name:  "self-id",
		Usage: "Address of the key server running the bridge",
	}
	// SignerFlag is the secret URI of the account signing the responses
	SignerFlag = cli.StringFlag{
		Name:  "signer",
		Usage: "Secret URI of the account submitting the responses, eg. //Alice",
	}
)

// Queue flags
var (
	// RedisFlag is the Redis server address
	RedisFlag = cli.StringFlag{
		Name:  "redis",
		Usage: "Redis server address of the task queue, eg. 127.0.0.1:6379",
	}
	// QueueFlag is the task queue name
	QueueFlag = cli.StringFlag{
		Name:  "queue",
		Usage: "Name of the task queue shared with the key server",
	}
)

// Metrics flags
var (
	// MetricsFlag enables the metrics server
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Publish the bridge metrics",
	}
	// MetricsAddressFlag is the metrics server listening address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the metrics server",
	}
)

// RootFlags are the flags of the bridge and of the export command.
var RootFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	EndpointFlag,
	SelfIDFlag,
	SignerFlag,
	RedisFlag,
	QueueFlag,
	MetricsFlag,
	MetricsAddressFlag,
}

// FixFlagOrder allows us to use various flag order formats (ie, `secretstore-bridge --config
// config.toml export` and `secretstore-bridge export --config config.toml`) by checking and
// setting the values of the global flags the command flags do not set.
func FixFlagOrder(f func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, flagName := range ctx.FlagNames() {
			if ctx.IsSet(flagName) || !ctx.GlobalIsSet(flagName) {
				continue
			}

			err := ctx.Set(flagName, ctx.GlobalString(flagName))
			if err != nil {
				return fmt.Errorf("cannot set flag %s: %w", flagName, err)
			}
		}
		return f(ctx)
	}
}
