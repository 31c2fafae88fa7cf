package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool hands out glamour renderers, one sync.Pool per option set.
// A TermRenderer holds per-render state, so each Render call needs its own.
type rendererPool struct {
	mu    sync.RWMutex
	pools map[string]*sync.Pool
}

var globalPool = &rendererPool{
	pools: make(map[string]*sync.Pool),
}

func cacheKey(opts Options) string {
	return fmt.Sprintf("%s:%d:%t:%t",
		opts.Style,
		opts.Width,
		opts.EnableEmoji,
		opts.PreserveNewLines,
	)
}

func (p *rendererPool) getPool(opts Options) *sync.Pool {
	key := cacheKey(opts)

	p.mu.RLock()
	if pool, ok := p.pools[key]; ok {
		p.mu.RUnlock()
		return pool
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if pool, ok := p.pools[key]; ok {
		return pool
	}

	pool := &sync.Pool{
		New: func() any {
			r, err := createRenderer(opts)
			if err != nil {
				return nil
			}
			return r
		},
	}
	p.pools[key] = pool
	return pool
}

// get returns a pooled renderer for opts, building one when the pool is empty.
func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	pool := p.getPool(opts)
	r, ok := pool.Get().(*glamour.TermRenderer)
	if !ok {
		// the pool swallowed the construction error; rebuild to report it
		return createRenderer(opts)
	}
	return r, nil
}

func (p *rendererPool) put(opts Options, renderer *glamour.TermRenderer) {
	if renderer == nil {
		return
	}
	p.getPool(opts).Put(renderer)
}

// createRenderer builds a renderer for opts. Style is a glamour style name
// or the path of a JSON style file.
func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}

	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}

	if opts.PreserveNewLines {
		ropts = append(ropts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(ropts...)
}

// ClearCache drops every renderer pool.
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[string]*sync.Pool)
	globalPool.mu.Unlock()
}

// CacheSize returns how many option sets currently have a pool.
func CacheSize() int {
	globalPool.mu.RLock()
	defer globalPool.mu.RUnlock()
	return len(globalPool.pools)
}
