package models

// StreamState is the lifecycle state of one stream connection.
type StreamState int

const (
	StreamIdle StreamState = iota
	StreamConnecting
	StreamStreaming
	StreamClosed
	StreamAborted
	StreamErrored
)

func (s StreamState) String() string {
	switch s {
	case StreamIdle:
		return "idle"
	case StreamConnecting:
		return "connecting"
	case StreamStreaming:
		return "streaming"
	case StreamClosed:
		return "closed"
	case StreamAborted:
		return "aborted"
	case StreamErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions happen on the connection.
func (s StreamState) Terminal() bool {
	return s == StreamClosed || s == StreamAborted || s == StreamErrored
}
