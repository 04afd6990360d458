package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/signal"
)

func TestWindow(t *testing.T) {
	w, err := signal.NewWindow[byte](4)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Cap())

	steps := []struct {
		push   byte
		unique bool
	}{
		{'a', false},
		{'b', false},
		{'c', false},
		{'a', false},
		{'b', false},
		{'d', true},
		{'a', false},
	}
	for i, s := range steps {
		w.Push(s.push)
		assert.Equal(t, s.unique, w.AllUnique(), "after push %d (%q)", i+1, s.push)
	}
	assert.True(t, w.Full())
	assert.Equal(t, []byte("abda"), w.Values())
}

func TestWindow_Partial(t *testing.T) {
	w, err := signal.NewWindow[int](3)
	require.NoError(t, err)
	w.Push(1)
	w.Push(2)
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.Full())
	assert.False(t, w.AllUnique(), "a partial window is never unique")
	assert.Equal(t, []int{1, 2}, w.Values())

	_, err = signal.NewWindow[int](0)
	require.ErrorIs(t, err, signal.ErrBadWindowSize)
}

func TestFirstMarker(t *testing.T) {
	cases := []struct {
		stream          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		t.Run(tc.stream, func(t *testing.T) {
			got, err := signal.FirstMarker(tc.stream, signal.PacketMarkerSize)
			require.NoError(t, err)
			assert.Equal(t, tc.packet, got)

			got, err = signal.FirstMarker(tc.stream, signal.MessageMarkerSize)
			require.NoError(t, err)
			assert.Equal(t, tc.message, got)
		})
	}
}

func TestFirstMarker_NotFound(t *testing.T) {
	// Shorter than the window: the window never fills.
	_, err := signal.FirstMarker("abc", signal.PacketMarkerSize)
	require.ErrorIs(t, err, signal.ErrNoMarker)

	_, err = signal.FirstMarker("aaaaaaaaaa", signal.PacketMarkerSize)
	require.ErrorIs(t, err, signal.ErrNoMarker)

	_, err = signal.FirstMarker("", signal.PacketMarkerSize)
	require.ErrorIs(t, err, signal.ErrNoMarker)

	_, err = signal.FirstMarker("abcd", 0)
	require.ErrorIs(t, err, signal.ErrBadWindowSize)
}
