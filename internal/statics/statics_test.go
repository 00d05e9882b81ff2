package statics

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterTable struct {
	n int
}

type otherTable struct {
	n int
}

type tagged[Tag any] struct {
	n int
}

type tagA struct{}
type tagB struct{}

func TestGet_SameTypeSameInstance(t *testing.T) {
	a := Get(func() *counterTable { return &counterTable{n: 1} })
	b := Get(func() *counterTable { return &counterTable{n: 2} })

	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.Equal(t, 1, b.n, "second constructor must not run")
}

func TestGet_DistinctTypes(t *testing.T) {
	a := Get(func() *counterTable { return &counterTable{} })
	o := Get(func() *otherTable { return &otherTable{} })

	a.n = 10
	assert.Equal(t, 0, o.n)
}

func TestGet_PhantomTypeParameterPartitions(t *testing.T) {
	a := Get(func() *tagged[tagA] { return &tagged[tagA]{} })
	b := Get(func() *tagged[tagB] { return &tagged[tagB]{} })

	a.n = 7
	assert.Equal(t, 0, b.n)
	assert.Equal(t, 7, Get(func() *tagged[tagA] { return nil }).n)
}

func TestGet_ConstructorRunsOnce(t *testing.T) {
	type raced struct{}

	var calls atomic.Int32
	var wg sync.WaitGroup
	results := make([]*raced, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get(func() *raced {
				calls.Add(1)
				return &raced{}
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.GreaterOrEqual(t, Count(), 1)
}
