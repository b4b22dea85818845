package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("same prefix and index yield the same id", func(t *testing.T) {
		assert.Equal(t, Generate("inq", 42), Generate("inq", 42))
	})

	t.Run("trailing underscore is tolerated", func(t *testing.T) {
		assert.Equal(t, Generate("act", 7), Generate("act_", 7))
	})

	t.Run("shape is prefix plus 28 base62 chars", func(t *testing.T) {
		id := Generate("rep", 300)
		require.True(t, strings.HasPrefix(id, "rep_"))
		body := strings.TrimPrefix(id, "rep_")
		assert.Len(t, body, bodyLength)
		for _, c := range body {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected rune %q", c)
		}
	})

	t.Run("distinct indices yield distinct ids", func(t *testing.T) {
		seen := make(map[string]int, 2000)
		for i := range 2000 {
			id := Generate("inq", i)
			prev, dup := seen[id]
			require.False(t, dup, "index %d collides with %d", i, prev)
			seen[id] = i
		}
	})

	t.Run("prefix participates in the body", func(t *testing.T) {
		a := strings.TrimPrefix(Generate("inq", 1), "inq_")
		b := strings.TrimPrefix(Generate("act", 1), "act_")
		assert.NotEqual(t, a, b)
	})
}

func TestRandom(t *testing.T) {
	id := Random("itmpl_")
	require.True(t, strings.HasPrefix(id, "itmpl_"))
	assert.Len(t, strings.TrimPrefix(id, "itmpl_"), randLength)
	assert.NotEqual(t, id, Random("itmpl_"))
}
