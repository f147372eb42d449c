package accounting

// Kind is the type discriminator of a drained account payload.
type Kind uint8

const (
	// UnknownKind is reserved for payloads carrying the legacy placeholder tag.
	UnknownKind Kind = iota
	// ClientKind identifies the payload of a client quota account.
	ClientKind
	// NodeKind identifies the payload of a storage node capacity account.
	NodeKind
)

// String returns a string representation of the account kind.
func (k Kind) String() string {
	switch k {
	case ClientKind:
		return "Client"
	case NodeKind:
		return "Node"
	default:
		return "Unknown"
	}
}

// KindFromString parses a string and returns the account kind it defines.
func KindFromString(stringKind string) (Kind, error) {
	switch stringKind {
	case "Client":
		return ClientKind, nil
	case "Node":
		return NodeKind, nil
	default:
		return UnknownKind, ErrUnknownKind
	}
}
