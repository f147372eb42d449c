package accounting

// ParametersDefinition contains the definition of the configuration parameters used by the accounting plugin.
type ParametersDefinition struct {
	// DefaultGrantBytes is the amount of space granted to a newly tracked client, in bytes.
	DefaultGrantBytes int `default:"1073741824" usage:"space granted to a newly tracked client, in bytes"`
	// AdmissionFilterEnabled defines whether only explicitly allowed identities get tracked.
	AdmissionFilterEnabled bool `default:"false" usage:"track only explicitly allowed identities"`
	// AllowedIdentities is the list of base58 encoded public keys admitted when the filter is enabled.
	AllowedIdentities []string `usage:"base58 encoded public keys admitted when the admission filter is enabled"`
	// StatusLogInterval is the interval between status log lines, in seconds.
	StatusLogInterval int `default:"30" usage:"interval between accounting status log lines, in seconds"`
}

// Parameters contains the configuration parameters of the accounting plugin.
var Parameters = &ParametersDefinition{}
