package gracefulshutdown

// ParametersDefinition contains the definition of the configuration parameters used by the graceful shutdown plugin.
type ParametersDefinition struct {
	// WaitToKillTime is the maximum amount of time to wait for background processes to terminate, in seconds.
	WaitToKillTime int `default:"60" usage:"the maximum amount of time to wait for background processes to terminate, in seconds"`
}

// Parameters contains the configuration parameters of the graceful shutdown plugin.
var Parameters = &ParametersDefinition{}
