// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "errors"

var (
	errNoConfigPath   = errors.New("no configuration file path given")
	errUnknownCommand = errors.New("unknown command")
)
