package accounting

import (
	"bytes"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/shrinkingmap"
	"github.com/iotaledger/hive.go/identity"
)

// Account is the quota policy of a single identity's ledger entry. The two
// implementations differ only in how writes and deletes are booked: a
// ClientAccount consumes a shared balance while a NodeAccount caps against a
// fixed ceiling.
type Account interface {
	// Put books size bytes into the account and reports whether the quota check passed.
	Put(size uint64) (success bool)

	// Delete releases size bytes from the account, flooring at zero.
	Delete(size uint64)

	// Kind returns the discriminator used to tag serialized snapshots of the account.
	Kind() Kind

	// Bytes marshals the account into a sequence of bytes.
	Bytes() (marshaledAccount []byte, err error)
}

// AdmissionGate decides whether an account may be materialized for an
// identity that is not yet tracked. The default gate admits every identity,
// which preserves the creation-on-first-write behavior that currently stands
// in for the account-creation handshake.
type AdmissionGate func(id identity.ID) (admitted bool)

// admitAll is the placeholder gate used until admission control exists.
func admitAll(identity.ID) bool {
	return true
}

// Ledger is a store of accounts keyed by identity. It owns its accounts
// exclusively: callers mutate them only through the ledger's operations. All
// operations are bounded in-memory computations guarded by a single mutex
// that is never held across a suspension point.
type Ledger[A Account] struct {
	// Events contains the events of the ledger.
	Events *Events

	vector     *shrinkingmap.ShrinkingMap[identity.ID, A]
	mutex      sync.RWMutex
	newAccount func() A
	admit      AdmissionGate
}

// newLedger creates a new ledger that materializes missing accounts with the
// given factory once the admission gate admits their identity.
func newLedger[A Account](accountFactory func() A, admissionGate AdmissionGate) (newLedger *Ledger[A]) {
	return &Ledger[A]{
		Events:     newEvents(),
		vector:     shrinkingmap.New[identity.ID, A](),
		newAccount: accountFactory,
		admit:      admissionGate,
	}
}

// Has returns whether an account exists for the given identity.
func (l *Ledger[A]) Has(id identity.ID) (has bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.vector.Has(id)
}

// Size returns the number of tracked identities.
func (l *Ledger[A]) Size() (size int) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.vector.Size()
}

// Put books size bytes for the given identity and reports whether the quota
// check passed. An identity without an account is first run through the
// admission gate and, if admitted, materialized with the default grant - even
// when the subsequent quota check fails. Subsequent Has calls therefore
// return true after any admitted Put, successful or not.
func (l *Ledger[A]) Put(id identity.ID, size uint64) (success bool) {
	var created bool
	success = func() bool {
		l.mutex.Lock()
		defer l.mutex.Unlock()

		account, exists := l.vector.Get(id)
		if !exists {
			if !l.admit(id) {
				return false
			}
			account = l.newAccount()
			l.vector.Set(id, account)
			created = true
		}

		return account.Put(size)
	}()

	if created {
		l.Events.AccountCreated.Trigger(&AccountCreatedEvent{ID: id})
	}
	if success {
		l.Events.DataStored.Trigger(&DataStoredEvent{ID: id, Size: size})
	}

	return success
}

// Delete releases size bytes from the account of the given identity. It is a
// no-op for an unknown identity and never materializes an account.
func (l *Ledger[A]) Delete(id identity.ID, size uint64) {
	l.mutex.Lock()
	account, exists := l.vector.Get(id)
	if exists {
		account.Delete(size)
	}
	l.mutex.Unlock()

	if exists {
		l.Events.DataDeleted.Trigger(&DataDeletedEvent{ID: id, Size: size})
	}
}

// ForEach iterates over the ledger and calls the provided callback with every
// tracked identity and its account until the callback returns false.
func (l *Ledger[A]) ForEach(callback func(id identity.ID, account A) bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	l.vector.ForEach(callback)
}

// drainAndReset atomically empties the ledger by swapping the backing
// collection for an empty one and serializes the drained accounts outside the
// lock, so no concurrent caller ever observes a partially drained store.
// Every account is removed unconditionally; only those whose identity passes
// the emit filter (nil means all) are serialized and returned, sorted by
// identity for a deterministic output order. A serialization failure is
// scoped to its account: the account is dropped, its error combined into the
// returned error and the drain continues.
func (l *Ledger[A]) drainAndReset(emit func(id identity.ID) bool) (snapshots []*AccountSnapshot, err error) {
	l.mutex.Lock()
	drained := l.vector
	l.vector = shrinkingmap.New[identity.ID, A]()
	l.mutex.Unlock()

	discarded := 0
	snapshots = make([]*AccountSnapshot, 0, drained.Size())
	drained.ForEach(func(id identity.ID, account A) bool {
		if emit != nil && !emit(id) {
			discarded++
			return true
		}

		accountBytes, accountErr := account.Bytes()
		if accountErr != nil {
			accountErr = errors.Wrapf(accountErr, "failed to serialize account of %s", id)
			err = errors.CombineErrors(err, accountErr)
			l.Events.Error.Trigger(accountErr)
			discarded++
			return true
		}
		snapshots = append(snapshots, NewAccountSnapshot(id, account.Kind(), accountBytes))

		return true
	})

	sort.Slice(snapshots, func(i, j int) bool {
		return bytes.Compare(snapshots[i].ID().Bytes(), snapshots[j].ID().Bytes()) < 0
	})

	l.Events.Drained.Trigger(&DrainedEvent{Emitted: len(snapshots), Discarded: discarded})

	return snapshots, err
}
