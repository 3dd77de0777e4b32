package batching

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsEnterExit(t *testing.T) {
	var levels Levels

	outer, exitOuter := levels.Enter()
	inner, exitInner := levels.Enter()
	assert.Equal(t, 1, outer)
	assert.Equal(t, 2, inner)
	assert.Equal(t, 2, levels.Depth())

	exitInner()
	exitInner() // second call is a no-op
	assert.Equal(t, 1, levels.Depth())

	again, exitAgain := levels.Enter()
	assert.Equal(t, 2, again)
	exitAgain()

	exitOuter()
	assert.Equal(t, 0, levels.Depth())
}

func TestLevelsOutOfOrderExitPanics(t *testing.T) {
	var levels Levels

	_, exitOuter := levels.Enter()
	_, _ = levels.Enter()

	assert.Panics(t, exitOuter)
}

func TestLevelsConcurrentDepth(t *testing.T) {
	var levels Levels
	var wg sync.WaitGroup

	seen := make([]int, 32)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			level, _ := levels.Enter()
			seen[i] = level
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(seen), levels.Depth())
	assert.ElementsMatch(t, seqInts(1, len(seen)), seen)
}

func seqInts(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}
