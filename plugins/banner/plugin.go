package banner

import (
	"fmt"

	"github.com/iotaledger/hive.go/node"
)

const (
	// PluginName is the name of the banner plugin.
	PluginName = "Banner"

	// AppName is the name of the app.
	AppName = "Vault"

	// AppVersion is the version of the app.
	AppVersion = "v0.1.0"
)

// Plugin is the plugin instance of the banner plugin.
var Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

func configure(*node.Plugin) {
	fmt.Printf("%s %s\n\n", AppName, AppVersion)
}
