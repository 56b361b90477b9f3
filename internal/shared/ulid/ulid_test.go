package ulid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID_Unique(t *testing.T) {
	t.Parallel()

	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestCreatedAt(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Second)
	got, ok := CreatedAt(NewULID())
	require.True(t, ok)
	assert.True(t, got.After(before))
	assert.Equal(t, time.UTC, got.Location())

	got, ok = CreatedAt("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1469918176385).UTC(), got)

	_, ok = CreatedAt("run-1")
	assert.False(t, ok)
}
