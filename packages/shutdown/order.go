package shutdown

// Shutdown priorities of the daemon's background workers.
const (
	// PriorityAccounting defines the shutdown priority of the accounting plugin.
	PriorityAccounting = iota
)
