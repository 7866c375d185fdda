package status

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("fps")
	a.Set(59.5)

	assert.Same(t, a, m.Get("fps"))
	assert.Equal(t, 59.5, m.Get("fps").Get())
	assert.True(t, m.Has("fps"))
	assert.False(t, m.Has("tps"))
	assert.Equal(t, 1, m.Count())
}

func TestRangeKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("score").Store(300)
	r.Ints.Get("lives").Store(2)
	r.Ints.Get("entities").Store(17)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"score", "lives", "entities"}, keys)
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("fps").Set(60)
	r.Ints.Get("score").Store(125)
	r.Strings.Get("phase").Store("running")

	assert.Equal(t, 3, r.TotalCount())
	assert.Equal(t, []string{"phase: running", "score: 125", "fps: 60.0"}, r.Lines())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())

	s.Store("abcdefghijklmnopqrstuvwxyz0123")
	assert.Len(t, s.Load(), MaxStringLen)
}
