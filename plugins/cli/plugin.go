package cli

import (
	"fmt"
	"os"

	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"

	"github.com/storanet/vault/plugins/banner"
)

// PluginName is the name of the CLI plugin.
const PluginName = "CLI"

var (
	// Plugin is the plugin instance of the CLI plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

	version = flag.BoolP("version", "v", false, "show the version of the app")
)

func init() {
	flag.Usage = printUsage
}

func configure(*node.Plugin) {
	if *version {
		fmt.Println(banner.AppName + " " + banner.AppVersion)
		os.Exit(0)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr,
		"Usage of %s (%s):\n\nCommand line flags:\n", os.Args[0], banner.AppVersion)
	flag.PrintDefaults()
	os.Exit(0)
}
