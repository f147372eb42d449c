package accounting

import (
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/identity"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the existing events of a ledger.
type Events struct {
	// AccountCreated is an event that gets triggered whenever an account is materialized for a new identity.
	AccountCreated *event.Event[*AccountCreatedEvent]

	// DataStored is an event that gets triggered whenever a put is booked successfully.
	DataStored *event.Event[*DataStoredEvent]

	// DataDeleted is an event that gets triggered whenever a delete is applied to an existing account.
	DataDeleted *event.Event[*DataDeletedEvent]

	// DataLost is an event that gets triggered whenever bytes are recorded as permanently lost from a node.
	DataLost *event.Event[*DataLostEvent]

	// AvailableSpaceSet is an event that gets triggered whenever a node refreshes its reported capacity.
	AvailableSpaceSet *event.Event[*AvailableSpaceSetEvent]

	// Drained is an event that gets triggered whenever the ledger is drained and reset.
	Drained *event.Event[*DrainedEvent]

	// Error is an event that gets triggered whenever an error occurs while draining an account.
	Error *event.Event[error]
}

// newEvents returns a new Events object.
func newEvents() (new *Events) {
	return &Events{
		AccountCreated:    event.New[*AccountCreatedEvent](),
		DataStored:        event.New[*DataStoredEvent](),
		DataDeleted:       event.New[*DataDeletedEvent](),
		DataLost:          event.New[*DataLostEvent](),
		AvailableSpaceSet: event.New[*AvailableSpaceSetEvent](),
		Drained:           event.New[*DrainedEvent](),
		Error:             event.New[error](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountCreatedEvent //////////////////////////////////////////////////////////////////////////////////////////

// AccountCreatedEvent is a container that acts as a dictionary for the AccountCreated event related parameters.
type AccountCreatedEvent struct {
	// ID contains the identity the account was materialized for.
	ID identity.ID
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DataStoredEvent //////////////////////////////////////////////////////////////////////////////////////////////

// DataStoredEvent is a container that acts as a dictionary for the DataStored event related parameters.
type DataStoredEvent struct {
	// ID contains the identity the bytes were booked for.
	ID identity.ID

	// Size contains the number of booked bytes.
	Size uint64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DataDeletedEvent /////////////////////////////////////////////////////////////////////////////////////////////

// DataDeletedEvent is a container that acts as a dictionary for the DataDeleted event related parameters.
type DataDeletedEvent struct {
	// ID contains the identity the delete was applied to.
	ID identity.ID

	// Size contains the requested delete size (which may exceed the recorded stored amount).
	Size uint64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DataLostEvent ////////////////////////////////////////////////////////////////////////////////////////////////

// DataLostEvent is a container that acts as a dictionary for the DataLost event related parameters.
type DataLostEvent struct {
	// ID contains the identity of the node the bytes were lost from.
	ID identity.ID

	// Size contains the number of lost bytes.
	Size uint64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AvailableSpaceSetEvent ///////////////////////////////////////////////////////////////////////////////////////

// AvailableSpaceSetEvent is a container that acts as a dictionary for the AvailableSpaceSet event related parameters.
type AvailableSpaceSetEvent struct {
	// ID contains the identity of the node that refreshed its capacity.
	ID identity.ID

	// AvailableSpace contains the freshly reported capacity in bytes.
	AvailableSpace uint64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DrainedEvent /////////////////////////////////////////////////////////////////////////////////////////////////

// DrainedEvent is a container that acts as a dictionary for the Drained event related parameters.
type DrainedEvent struct {
	// Emitted contains the number of accounts that were serialized and returned.
	Emitted int

	// Discarded contains the number of accounts that were removed without being returned (filtered out by the
	// membership set or failing serialization).
	Discarded int
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
