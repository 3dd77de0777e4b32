package batching

import (
	"fmt"
	"sync"
)

// Levels hands out vmap nesting levels. The zero value is ready to use.
//
// Entering a vmap returns depth+1 as its level, so nested invocations get
// strictly increasing levels and BatchDims built from them stay sorted.
// Exits must happen in reverse order of entry.
type Levels struct {
	mu    sync.Mutex
	depth int
}

// Enter starts a new nesting level and returns it with the func that ends it.
//
// Example:
//
//	var levels Levels
//	outer, exitOuter := levels.Enter() // 1
//	inner, exitInner := levels.Enter() // 2
//	exitInner()
//	exitOuter()
func (l *Levels) Enter() (int, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.depth++
	level := l.depth

	var once sync.Once
	return level, func() {
		once.Do(func() { l.exit(level) })
	}
}

// Depth returns the number of active levels.
func (l *Levels) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth
}

func (l *Levels) exit(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level != l.depth {
		panic(fmt.Sprintf("levels: exiting level %d while at depth %d", level, l.depth))
	}
	l.depth--
}
