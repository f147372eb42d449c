package logger

import (
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"

	"github.com/storanet/vault/plugins/dependencyinjection"
)

// PluginName is the name of the logger plugin.
const PluginName = "Logger"

// Plugin is the plugin instance of the logger plugin.
var Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

func init() {
	configuration.BindParameters(Parameters, "logger")

	Plugin.Events.Init.Attach(event.NewClosure(func(*node.InitEvent) {
		if err := dependencyinjection.Container.Invoke(func(config *configuration.Configuration) {
			if err := logger.InitGlobalLogger(config); err != nil {
				panic(err)
			}
		}); err != nil {
			Plugin.LogError(err)
		}

		// enable logging for the daemon
		daemon.DebugEnabled(true)
	}))
}
