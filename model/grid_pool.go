package model

import "sync"

// UniverseToPool returns a universe to the pool for reuse
func UniverseToPool(u *Universe, pool *UniversePool) {
	if pool == nil || u == nil {
		return
	}

	pool.Put(u)
}

// UniversePool recycles universe buffers across restarts. A universe is
// never resized: one of a different size gets fresh buffers on Get.
type UniversePool struct {
	pool sync.Pool
}

func NewUniversePool() *UniversePool {
	return &UniversePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Universe{}
			},
		},
	}
}

// Get returns a width x height universe in its freshly constructed state
func (p *UniversePool) Get(width, height int) *Universe {
	u := p.pool.Get().(*Universe)
	if u.width != width || u.height != height || len(u.cells) != width*height {
		fresh := NewUniverse(width, height)
		if u.rnd != nil {
			fresh.rnd = u.rnd
		}
		return fresh
	}
	u.reset()
	return u
}

// Put hands a universe back. The caller must not use it afterwards.
func (p *UniversePool) Put(u *Universe) {
	u.reset()
	p.pool.Put(u)
}
