package signal

import "fmt"

// FirstMarker returns the 1-based position of the last symbol of the first
// full window of size distinct bytes in stream.
// Returns ErrNoMarker if the stream is exhausted first, which includes every
// stream shorter than size.
func FirstMarker(stream string, size int) (int, error) {
	w, err := NewWindow[byte](size)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(stream); i++ {
		w.Push(stream[i])
		if w.AllUnique() {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: window %d over %d bytes", ErrNoMarker, size, len(stream))
}
