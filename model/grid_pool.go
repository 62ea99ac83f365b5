package model

import "sync"

// GridToPool hands a retired generation back for reuse; a nil pool drops it
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between ticks
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns an all-dead grid of the requested dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put kills every cell of g and returns it to the pool. The caller must not use
// g afterwards.
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
