package accounting

import (
	"context"
	"sync"
	"time"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/core/generics/options"
	"github.com/iotaledger/hive.go/generics/set"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/atomic"

	"github.com/storanet/vault/packages/accounting"
	"github.com/storanet/vault/packages/shutdown"
)

// PluginName is the name of the accounting plugin.
const PluginName = "Accounting"

var (
	// Plugin is the plugin instance of the accounting plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure, run)

	log *logger.Logger

	clientLedger     *accounting.ClientLedger
	clientLedgerOnce sync.Once
	nodeLedger       *accounting.NodeLedger
	nodeLedgerOnce   sync.Once

	// running totals of the bytes accepted and released since startup
	storedBytes  atomic.Uint64
	deletedBytes atomic.Uint64
	lostBytes    atomic.Uint64
)

func init() {
	configuration.BindParameters(Parameters, "accounting")
}

// ClientLedger returns the client side ledger instance, creating it on first use.
func ClientLedger() *accounting.ClientLedger {
	clientLedgerOnce.Do(func() {
		opts := []options.Option[accounting.ClientLedger]{
			accounting.WithGrant(uint64(Parameters.DefaultGrantBytes)),
		}
		if gate := admissionGate(); gate != nil {
			opts = append(opts, accounting.WithClientAdmissionGate(gate))
		}

		clientLedger = accounting.NewClientLedger(opts...)
	})

	return clientLedger
}

// NodeLedger returns the node side ledger instance, creating it on first use.
func NodeLedger() *accounting.NodeLedger {
	nodeLedgerOnce.Do(func() {
		opts := []options.Option[accounting.NodeLedger]{}
		if gate := admissionGate(); gate != nil {
			opts = append(opts, accounting.WithNodeAdmissionGate(gate))
		}

		nodeLedger = accounting.NewNodeLedger(opts...)
	})

	return nodeLedger
}

// admissionGate builds the gate applied by both ledgers from the configured
// identity allowlist. It returns nil when the filter is disabled, leaving the
// ledgers on their admit-all default.
func admissionGate() accounting.AdmissionGate {
	if !Parameters.AdmissionFilterEnabled {
		return nil
	}

	allowed := set.NewAdvancedSet[identity.ID]()
	for _, encodedPubKey := range Parameters.AllowedIdentities {
		id, err := accounting.IDFromPubKey(encodedPubKey)
		if err != nil {
			panic(err)
		}
		allowed.Add(id)
	}

	return allowed.Has
}

func configure(*node.Plugin) {
	log = logger.NewLogger(PluginName)

	configureEvents(ClientLedger().Events)
	configureEvents(NodeLedger().Events)
}

func configureEvents(ledgerEvents *accounting.Events) {
	ledgerEvents.AccountCreated.Attach(event.NewClosure(func(ev *accounting.AccountCreatedEvent) {
		log.Debugw("account created", "identity", ev.ID)
	}))
	ledgerEvents.DataStored.Attach(event.NewClosure(func(ev *accounting.DataStoredEvent) {
		storedBytes.Add(ev.Size)
	}))
	ledgerEvents.DataDeleted.Attach(event.NewClosure(func(ev *accounting.DataDeletedEvent) {
		deletedBytes.Add(ev.Size)
	}))
	ledgerEvents.DataLost.Attach(event.NewClosure(func(ev *accounting.DataLostEvent) {
		lostBytes.Add(ev.Size)
		log.Warnw("data lost", "identity", ev.ID, "size", ev.Size)
	}))
	ledgerEvents.Drained.Attach(event.NewClosure(func(ev *accounting.DrainedEvent) {
		log.Infow("ledger drained", "emitted", ev.Emitted, "discarded", ev.Discarded)
	}))
	ledgerEvents.Error.Attach(event.NewClosure(func(err error) {
		log.Errorw("accounting error", "err", err)
	}))
}

func run(*node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, func(ctx context.Context) {
		interval := time.Duration(Parameters.StatusLogInterval) * time.Second
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Infow("accounting status",
					"clients", ClientLedger().Size(),
					"nodes", NodeLedger().Size(),
					"storedBytes", storedBytes.Load(),
					"deletedBytes", deletedBytes.Load(),
					"lostBytes", lostBytes.Load(),
				)
			}
		}
	}, shutdown.PriorityAccounting); err != nil {
		log.Panicf("Failed to start as daemon: %s", err)
	}
}
