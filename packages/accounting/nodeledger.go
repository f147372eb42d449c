package accounting

import (
	"github.com/iotaledger/hive.go/core/generics/options"
	"github.com/iotaledger/hive.go/generics/set"
	"github.com/iotaledger/hive.go/identity"
)

// NodeLedger tracks the stored and lost bytes of storage node identities
// against the space they offer.
type NodeLedger struct {
	*Ledger[*NodeAccount]

	offeredSpace uint64
	admit        AdmissionGate
}

// NewNodeLedger creates a new NodeLedger.
func NewNodeLedger(opts ...options.Option[NodeLedger]) (nodeLedger *NodeLedger) {
	nodeLedger = options.Apply(&NodeLedger{
		offeredSpace: DefaultGrant,
		admit:        admitAll,
	}, opts)
	nodeLedger.Ledger = newLedger(func() *NodeAccount {
		return NewNodeAccount(nodeLedger.offeredSpace)
	}, nodeLedger.admit)

	return nodeLedger
}

// HandleLostData removes size bytes from the stored total of the given node
// identity and records them as permanently lost. Like Delete, it is a no-op
// for an unknown identity.
func (n *NodeLedger) HandleLostData(id identity.ID, size uint64) {
	n.mutex.Lock()
	account, exists := n.vector.Get(id)
	if exists {
		account.HandleLostData(size)
	}
	n.mutex.Unlock()

	if exists {
		n.Events.DataLost.Trigger(&DataLostEvent{ID: id, Size: size})
	}
}

// HandleFailure records a failed storage operation on the given node
// identity. It is accounted identically to lost data.
func (n *NodeLedger) HandleFailure(id identity.ID, size uint64) {
	n.HandleLostData(id, size)
}

// UpdateAccount reconciles a reported difference between the booked and the
// actual stored total of the given node identity. The difference is accounted
// as lost data.
func (n *NodeLedger) UpdateAccount(id identity.ID, diff uint64) {
	n.HandleLostData(id, diff)
}

// SetAvailableSpace overwrites the offered space of the given node identity
// with its freshly reported capacity. Refreshing the capacity is a write, so
// an unknown but admitted identity is materialized with the default account
// first. The stored total is not validated against the new capacity.
func (n *NodeLedger) SetAvailableSpace(id identity.ID, availableSpace uint64) {
	var created bool
	applied := func() bool {
		n.mutex.Lock()
		defer n.mutex.Unlock()

		account, exists := n.vector.Get(id)
		if !exists {
			if !n.admit(id) {
				return false
			}
			account = NewNodeAccount(n.offeredSpace)
			n.vector.Set(id, account)
			created = true
		}
		account.SetAvailableSpace(availableSpace)

		return true
	}()

	if created {
		n.Events.AccountCreated.Trigger(&AccountCreatedEvent{ID: id})
	}
	if applied {
		n.Events.AvailableSpaceSet.Trigger(&AvailableSpaceSetEvent{ID: id, AvailableSpace: availableSpace})
	}
}

// DrainAndReset atomically empties the ledger, removing every account
// unconditionally, and returns serialized snapshots of only those accounts
// whose identity is a member of the given set. The accounted state of
// non-members is discarded; the DrainedEvent reports how many accounts that
// affected so callers can observe the loss. Afterwards Has returns false for
// every previously tracked identity, member or not.
func (n *NodeLedger) DrainAndReset(members *set.AdvancedSet[identity.ID]) (snapshots []*AccountSnapshot, err error) {
	return n.drainAndReset(members.Has)
}

// WithOfferedSpace sets the capacity assumed for newly admitted node
// identities until they report their own.
func WithOfferedSpace(offeredSpace uint64) options.Option[NodeLedger] {
	return func(n *NodeLedger) {
		n.offeredSpace = offeredSpace
	}
}

// WithNodeAdmissionGate sets the gate that decides which node identities may
// hold an account.
func WithNodeAdmissionGate(admissionGate AdmissionGate) options.Option[NodeLedger] {
	return func(n *NodeLedger) {
		n.admit = admissionGate
	}
}
