package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"

	"github.com/storanet/vault/plugins/dependencyinjection"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

var (
	// Plugin is the plugin instance of the config plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

	// flags
	configFilePath      = flag.StringP("config", "c", "config.json", "file path of the config file")
	skipConfigAvailable = flag.Bool("skip-config", false, "skip config file availability check")

	_node    *configuration.Configuration
	nodeOnce sync.Once
)

func init() {
	if err := dependencyinjection.Container.Provide(Node); err != nil {
		panic(err)
	}
}

func configure(*node.Plugin) {
	Node()
}

// Node returns the node configuration instance, loading it on first use.
func Node() *configuration.Configuration {
	nodeOnce.Do(createNode)
	return _node
}

func createNode() {
	_node = configuration.New()

	flag.Parse()

	if err := _node.LoadFile(*configFilePath); err != nil {
		if !*skipConfigAvailable {
			fmt.Println(err.Error())
			fmt.Println("no config file present, terminating Vault. use --skip-config to run without one.")
			// daemon is not running yet, so we just exit
			os.Exit(1)
		}
	}

	if err := _node.LoadFlagSet(flag.CommandLine); err != nil {
		panic(err)
	}

	// propagate the loaded values into the bound parameter structs of the plugins
	configuration.UpdateBoundParameters(_node)
}
