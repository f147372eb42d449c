package logger

// ParametersDefinition contains the definition of the configuration parameters used by the logger plugin.
type ParametersDefinition struct {
	// Level defines the logger's level.
	Level string `default:"info" usage:"log level"`
	// DisableCaller defines whether to disable caller info in the logs.
	DisableCaller bool `default:"false" usage:"disable caller info in the logs"`
	// DisableStacktrace defines whether to disable stack traces in the logs.
	DisableStacktrace bool `default:"false" usage:"disable stack traces in the logs"`
	// Encoding defines the logger's encoding.
	Encoding string `default:"console" usage:"log encoding"`
	// OutputPaths defines the logger's output paths.
	OutputPaths []string `default:"stdout" usage:"log output paths"`
	// DisableEvents defines whether to disable log events.
	DisableEvents bool `default:"true" usage:"disable log events"`
}

// Parameters contains the configuration parameters of the logger plugin.
var Parameters = &ParametersDefinition{}
