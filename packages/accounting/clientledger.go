package accounting

import (
	"github.com/iotaledger/hive.go/core/generics/options"
)

// ClientLedger tracks the stored bytes of client identities against their
// granted quotas.
type ClientLedger struct {
	*Ledger[*ClientAccount]

	grant uint64
	admit AdmissionGate
}

// NewClientLedger creates a new ClientLedger.
func NewClientLedger(opts ...options.Option[ClientLedger]) (clientLedger *ClientLedger) {
	clientLedger = options.Apply(&ClientLedger{
		grant: DefaultGrant,
		admit: admitAll,
	}, opts)
	clientLedger.Ledger = newLedger(func() *ClientAccount {
		return NewClientAccount(clientLedger.grant)
	}, clientLedger.admit)

	return clientLedger
}

// DrainAndReset atomically empties the ledger and returns a serialized
// snapshot of every removed account, used during membership change events to
// hand off client quota state. Afterwards Has returns false for every
// previously tracked identity.
func (c *ClientLedger) DrainAndReset() (snapshots []*AccountSnapshot, err error) {
	return c.drainAndReset(nil)
}

// WithGrant sets the quota granted to newly admitted client identities.
func WithGrant(grant uint64) options.Option[ClientLedger] {
	return func(c *ClientLedger) {
		c.grant = grant
	}
}

// WithClientAdmissionGate sets the gate that decides which client identities
// may hold an account.
func WithClientAdmissionGate(admissionGate AdmissionGate) options.Option[ClientLedger] {
	return func(c *ClientLedger) {
		c.admit = admissionGate
	}
}
