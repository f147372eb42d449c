package accounting

// DefaultGrant is the quota in bytes granted to a newly admitted identity when
// no grant is injected. It stands in for the allowance that a future
// account-creation handshake will negotiate.
const DefaultGrant uint64 = 1 << 30
