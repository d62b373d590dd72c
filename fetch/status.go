package fetch

// Status represents where a store is in its request lifecycle
type Status int

const (
	// StatusIdle is the initial status before any load
	StatusIdle Status = iota
	// StatusLoading indicates a load is in flight
	StatusLoading
	// StatusReceived indicates the last load succeeded
	StatusReceived
	// StatusRejected indicates the last load failed
	StatusRejected
)

// String returns the string representation of a Status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReceived:
		return "received"
	case StatusRejected:
		return "rejected"
	default:
		return "idle"
	}
}
