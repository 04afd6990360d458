package signal

// Window is a fixed-capacity FIFO of the most recently pushed values.
// Once full, each Push evicts the oldest value.
type Window[T comparable] struct {
	buf  []T
	head int // index of the oldest value
	n    int // number of values held
}

// NewWindow returns an empty window holding at most size values.
// Returns ErrBadWindowSize if size < 1.
func NewWindow[T comparable](size int) (*Window[T], error) {
	if size < 1 {
		return nil, ErrBadWindowSize
	}

	return &Window[T]{buf: make([]T, size)}, nil
}

// Cap returns the window capacity.
func (w *Window[T]) Cap() int { return len(w.buf) }

// Len returns the number of values currently held.
func (w *Window[T]) Len() int { return w.n }

// Full reports whether the window holds Cap values.
func (w *Window[T]) Full() bool { return w.n == len(w.buf) }

// Push appends v, evicting the oldest value when the window is full.
func (w *Window[T]) Push(v T) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++
		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

// Values returns the held values, oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}

	return out
}

// AllUnique reports whether the window is full and no two held values are
// equal.
func (w *Window[T]) AllUnique() bool {
	if !w.Full() {
		return false
	}
	for i := 0; i < len(w.buf)-1; i++ {
		for j := i + 1; j < len(w.buf); j++ {
			if w.buf[i] == w.buf[j] {
				return false
			}
		}
	}

	return true
}
