package api

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader_FloorsFirstReportAtOne(t *testing.T) {
	// 1 byte of 1000 is 0.1%, which must surface as 1, not 0.
	var seen []int
	pr := newProgressReader(strings.NewReader(strings.Repeat("x", 1000)), 1000, func(p int) {
		seen = append(seen, p)
	})

	buf := make([]byte, 1)
	_, err := pr.Read(buf)
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, 1, seen[0])
}

func TestProgressReader_Monotone(t *testing.T) {
	var seen []int
	pr := newProgressReader(strings.NewReader(strings.Repeat("x", 100)), 100, func(p int) {
		seen = append(seen, p)
	})

	_, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)

	last := 0
	for _, p := range seen {
		assert.Greater(t, p, last, "reports must strictly increase (duplicates suppressed)")
		last = p
	}
	assert.Equal(t, 100, last)
}

func TestProgressReader_NilCallback(t *testing.T) {
	pr := newProgressReader(strings.NewReader("data"), 4, nil)
	_, err := io.Copy(io.Discard, pr)
	assert.NoError(t, err)
}

func TestProgressReader_ZeroTotal(t *testing.T) {
	called := false
	pr := newProgressReader(strings.NewReader("data"), 0, func(int) { called = true })
	_, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	assert.False(t, called)
}
