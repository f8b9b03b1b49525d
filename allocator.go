package argon2

import (
	"sync"

	"github.com/magical/libargon2/block"
)

// Allocator provides the memory matrix's backing storage. Argon2's
// memory cost is caller-tunable, so unlike a fixed-size scratchpad pool
// a single sync.Pool bucket cannot serve every request; PooledAllocator
// instead keeps one pool per distinct block count, matching the
// pool-of-reusable-buffers pattern in the teacher's memory.go
// (vmPool/scratchpadPool) while accommodating variable matrix sizes.
type Allocator interface {
	// Allocate returns a slice of exactly n zeroed blocks.
	Allocate(n uint32) []block.Block
	// Release returns a previously allocated slice for reuse. Callers
	// must not touch the slice again after releasing it.
	Release([]block.Block)
}

// directAllocator allocates fresh memory on every call and never
// pools. It is the default when no Allocator is supplied.
type directAllocator struct{}

func (directAllocator) Allocate(n uint32) []block.Block { return make([]block.Block, n) }
func (directAllocator) Release([]block.Block)           {}

// DefaultAllocator performs no pooling; every Hash call allocates and
// frees its own matrix.
var DefaultAllocator Allocator = directAllocator{}

// PooledAllocator reuses matrix buffers of the same size across calls,
// keyed by block count, on the theory that a service running Argon2
// under one fixed parameter set benefits from not re-touching fresh
// pages on every request.
type PooledAllocator struct {
	pools sync.Map // uint32 -> *sync.Pool
}

// NewPooledAllocator returns a ready-to-use PooledAllocator.
func NewPooledAllocator() *PooledAllocator {
	return &PooledAllocator{}
}

func (a *PooledAllocator) poolFor(n uint32) *sync.Pool {
	if v, ok := a.pools.Load(n); ok {
		return v.(*sync.Pool)
	}
	p := &sync.Pool{
		New: func() interface{} {
			return make([]block.Block, n)
		},
	}
	actual, _ := a.pools.LoadOrStore(n, p)
	return actual.(*sync.Pool)
}

// Allocate returns a slice of n blocks, zeroed, from the pool for that
// size.
func (a *PooledAllocator) Allocate(n uint32) []block.Block {
	buf := a.poolFor(n).Get().([]block.Block)
	for i := range buf {
		buf[i].Zero()
	}
	return buf
}

// Release returns buf to its size's pool.
func (a *PooledAllocator) Release(buf []block.Block) {
	if len(buf) == 0 {
		return
	}
	a.poolFor(uint32(len(buf))).Put(buf)
}
