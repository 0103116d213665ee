package auth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklist_AddAndContains(t *testing.T) {
	t.Parallel()

	b := NewBlacklist()

	assert.False(t, b.Contains("tok-1"))

	b.Add("tok-1")
	assert.True(t, b.Contains("tok-1"))
	assert.False(t, b.Contains("tok-2"))
	assert.Equal(t, 1, b.Len())
}

func TestBlacklist_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	b := NewBlacklist()

	b.Add("tok-1")
	b.Add("tok-1")

	assert.True(t, b.Contains("tok-1"))
	assert.Equal(t, 1, b.Len())
}

func TestBlacklist_Remove(t *testing.T) {
	t.Parallel()

	b := NewBlacklist()

	b.Add("tok-1")
	b.Remove("tok-1")
	assert.False(t, b.Contains("tok-1"))

	// removing an absent token is a no-op
	b.Remove("tok-1")
	assert.Equal(t, 0, b.Len())
}

func TestBlacklist_TokensSnapshot(t *testing.T) {
	t.Parallel()

	b := NewBlacklist()
	b.Add("tok-1")
	b.Add("tok-2")

	got := b.Tokens()
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, got)

	// mutating the snapshot must not affect the set
	got[0] = "mutated"
	assert.True(t, b.Contains("tok-1"))
	assert.True(t, b.Contains("tok-2"))
}

func TestBlacklist_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	b := NewBlacklist()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tok := fmt.Sprintf("tok-%d-%d", n, j)
				b.Add(tok)
				_ = b.Contains(tok)
				_ = b.Tokens()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16*100, b.Len())
}
