// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package service

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . TaskQueue,Metrics
//go:generate mockgen -destination=mock_secretstore_test.go -package $GOPACKAGE github.com/ChainSafe/gossamer-secretstore/lib/secretstore BlockTasks,Publisher
