package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

func TestGenerator_NewID_Format(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock{at: at})

	id := gen.NewID("shop")

	parts := strings.SplitN(id, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "shop", parts[0])
	assert.Equal(t, "1740830400000", parts[1])
	assert.NotEmpty(t, parts[2])
}

func TestGenerator_NewID_Unique(t *testing.T) {
	gen := NewGenerator(fixedClock{at: time.Now()})

	seen := make(map[string]struct{})
	for range 100 {
		id := gen.NewID("prod")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
