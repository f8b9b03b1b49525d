// Package core implements the memory-hard engine shared by all five
// Argon2 variants: the block compressor, the reference-block addressor,
// and the pass/slice/lane scheduler that drives them across the memory
// matrix. It is the data-parallel heart of the algorithm; package argon2
// is the driver that validates inputs, seeds the matrix, and finalizes
// the tag around it.
package core

import (
	"sync"

	"github.com/magical/libargon2/block"
)

// Matrix is the rectangular memory-block array Argon2 fills in place,
// plus the derived layout constants that never change once computed.
type Matrix struct {
	Blocks []block.Block

	Lanes         uint32
	LaneLength    uint32
	SegmentLength uint32
	MemoryBlocks  uint32
	Passes        uint32
	Variant       Variant

	sbox *SBox
}

// NewMatrix allocates a matrix of memoryBlocks blocks arranged into
// lanes rows.
func NewMatrix(memoryBlocks, lanes, passes uint32, variant Variant) *Matrix {
	return NewMatrixFrom(make([]block.Block, memoryBlocks), lanes, passes, variant)
}

// NewMatrixFrom builds a matrix over caller-supplied storage, for use
// with an external Allocator; len(blocks) must already be a multiple of
// lanes*SyncPoints.
func NewMatrixFrom(blocks []block.Block, lanes, passes uint32, variant Variant) *Matrix {
	memoryBlocks := uint32(len(blocks))
	m := &Matrix{
		Blocks:        blocks,
		Lanes:         lanes,
		LaneLength:    memoryBlocks / lanes,
		SegmentLength: memoryBlocks / lanes / SyncPoints,
		MemoryBlocks:  memoryBlocks,
		Passes:        passes,
		Variant:       variant,
	}
	if variant.usesSBox() {
		m.sbox = &SBox{}
	}
	return m
}

// At returns a pointer to the block at (lane, index) within the lane.
func (m *Matrix) At(lane, index uint32) *block.Block {
	return &m.Blocks[lane*m.LaneLength+index]
}

// Seed returns a pointer to the lane's i-th seed block (i in {0,1}), for
// the driver to fill directly from the pre-hash.
func (m *Matrix) Seed(lane, i uint32) *block.Block {
	return m.At(lane, i)
}

// Fill runs the full pass x slice x lane schedule: within a slice, all
// lanes are filled concurrently by one goroutine each; a sync.WaitGroup
// barrier separates slices, so no worker starts slice s+1 before every
// worker has finished slice s. This mirrors the worker-per-unit,
// WaitGroup-barrier fan-out in the teacher's dataset.go generate method.
func (m *Matrix) Fill() {
	for pass := uint32(0); pass < m.Passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < m.Lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					m.fillSegment(pass, lane, slice)
				}(lane)
			}
			wg.Wait()
		}

		if m.Variant.usesSBox() {
			RefreshSBox(m.sbox, m.At(0, 0))
		}
	}
}

// fillSegment fills one lane's segment_length-block segment for one
// pass/slice. It owns its lane's slots in this slice exclusively; its
// only cross-goroutine reads are of blocks finished in a prior slice or
// pass, which the caller's slice barrier already guarantees are visible.
func (m *Matrix) fillSegment(pass, lane, slice uint32) {
	start := uint32(0)
	if pass == 0 && slice == 0 {
		start = 2
	}

	var stream *addressStream
	independent := m.Variant.dataIndependent(pass, slice)
	if independent {
		stream = newAddressStream(Position{Pass: pass, Lane: lane, Slice: slice}, m.MemoryBlocks, m.Passes, m.Variant)
	}

	sbox := m.sbox
	if pass == 0 {
		// The S-box does not exist until the end of pass 0 (it is
		// derived from the first memory block, which is itself still
		// being filled during pass 0), so ds compresses plain during
		// the first pass and only starts consulting the table from
		// pass 1 onward.
		sbox = nil
	}

	for index := start; index < m.SegmentLength; index++ {
		currIndex := slice*m.SegmentLength + index
		prevIndex := currIndex - 1
		if currIndex == 0 {
			prevIndex = m.LaneLength - 1
		}

		var j uint64
		if independent {
			j = stream.Next()
		} else {
			j = m.At(lane, prevIndex)[0]
		}

		pos := Position{Pass: pass, Lane: lane, Slice: slice, Index: index}
		refLane, refIndex := refBlock(pos, j, m.Lanes, m.LaneLength, m.SegmentLength)

		prev := m.At(lane, prevIndex)
		ref := m.At(refLane, refIndex)
		next := m.At(lane, currIndex)
		compress(next, prev, ref, sbox, pass > 0)
	}
}
