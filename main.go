package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/storanet/vault/plugins/accounting"
	"github.com/storanet/vault/plugins/banner"
	"github.com/storanet/vault/plugins/cli"
	"github.com/storanet/vault/plugins/config"
	"github.com/storanet/vault/plugins/dependencyinjection"
	"github.com/storanet/vault/plugins/gracefulshutdown"
	"github.com/storanet/vault/plugins/logger"
)

func main() {
	node.Run(
		node.Plugins(
			dependencyinjection.Plugin,
			banner.Plugin,
			config.Plugin,
			logger.Plugin,
			cli.Plugin,

			accounting.Plugin,

			gracefulshutdown.Plugin,
		),
	)
}
