package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/internal/textio"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"NoTrailingNewline", "a\nb", []string{"a", "b"}},
		{"TrailingNewline", "a\nb\n", []string{"a", "b"}},
		{"InteriorBlank", "1\n\n2\n", []string{"1", "", "2"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"OnlyNewline", "\n", []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textio.Lines(tc.in))
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte("1000\n2000\n"), 0o600))
	got, err := textio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1000\n2000\n", got)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = textio.ReadFile(empty)
	require.ErrorIs(t, err, textio.ErrEmptyInput)

	_, err = textio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
