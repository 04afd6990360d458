package signal

import "errors"

// Sentinel errors for marker detection.
var (
	// ErrNoMarker indicates the stream ended before any all-distinct window.
	ErrNoMarker = errors.New("signal: marker not detected")
	// ErrBadWindowSize indicates a window capacity below one.
	ErrBadWindowSize = errors.New("signal: window size must be positive")
)

const (
	// PacketMarkerSize is the window size of a start-of-packet marker.
	PacketMarkerSize = 4
	// MessageMarkerSize is the window size of a start-of-message marker.
	MessageMarkerSize = 14
)
