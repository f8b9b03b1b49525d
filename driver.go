// Package argon2 implements the memory-hard Argon2 password hashing
// core: pre-hashing, matrix seeding, the pass/slice/lane fill schedule,
// and tag finalization, across all five variants (d, i, di, id, ds).
//
// This package validates inputs and drives the memory-filling engine
// in package internal/core; it does not implement a PHC string
// encoding, streaming input, or constant-time tag comparison beyond
// the Equal helper.
package argon2

import (
	"github.com/magical/libargon2/block"
	"github.com/magical/libargon2/internal/blake2b"
	"github.com/magical/libargon2/internal/core"
)

// Context bundles a single Argon2 call's inputs: the password and salt
// alongside the reusable cost Params. Password and Params.Secret are
// zeroed right after pre-hashing if Params.ClearPassword/ClearSecret
// request it (Salt itself is never cleared: unlike password and secret
// it is not typically caller-sensitive).
type Context struct {
	Params
	Password []byte
	Salt     []byte
}

// Hash computes an Argon2 tag of outLen bytes for the given variant and
// writes it to a freshly allocated slice, using alloc as the matrix's
// memory provider. Pass DefaultAllocator for the common case.
func Hash(ctx *Context, variant core.Variant, outLen int, alloc Allocator) ([]byte, error) {
	if ctx == nil {
		return nil, ErrIncorrectParameter
	}
	if !variant.Valid() {
		return nil, ErrIncorrectType
	}
	if err := ctx.Params.Validate(len(ctx.Password), len(ctx.Salt), outLen); err != nil {
		return nil, err
	}

	h0 := preHash(&ctx.Params, variant, ctx.Password, ctx.Salt, outLen)
	blocks := memoryBlocks(ctx.MemoryCost, ctx.Lanes)

	if ctx.ClearPassword {
		zero(ctx.Password)
	}
	if ctx.ClearSecret {
		zero(ctx.Secret)
	}

	storage := alloc.Allocate(blocks)
	m := core.NewMatrixFrom(storage, ctx.Lanes, ctx.TimeCost, variant)
	seed(m, h0)
	m.Fill()

	tag := finalize(m, outLen)
	alloc.Release(m.Blocks)
	return tag, nil
}

// seed derives each lane's first two blocks from H0, per the algorithm:
// block[lane][i] = H'(H0 || le32(i) || le32(lane), 1024) for i in {0,1}.
func seed(m *core.Matrix, h0 [blake2b.Size]byte) {
	var input [blake2b.Size + 8]byte
	copy(input[:], h0[:])

	for lane := uint32(0); lane < m.Lanes; lane++ {
		for i := uint32(0); i < 2; i++ {
			putUint32(input[blake2b.Size:], i)
			putUint32(input[blake2b.Size+4:], lane)

			var buf [block.Size]byte
			blake2b.HPrime(buf[:], input[:])
			m.Seed(lane, i).FromBytes(buf[:])
		}
	}
}

func putUint32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// finalize XORs the last block of every lane together and expands the
// result to outLen bytes with H'.
func finalize(m *core.Matrix, outLen int) []byte {
	var c block.Block
	for lane := uint32(0); lane < m.Lanes; lane++ {
		c.XOR(m.At(lane, m.LaneLength-1))
	}

	cBytes := c.AppendBytes(make([]byte, 0, block.Size))
	tag := make([]byte, outLen)
	blake2b.HPrime(tag, cBytes)
	return tag
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
