package argon2

import (
	"crypto/subtle"

	"github.com/magical/libargon2/internal/core"
)

// Argon2d hashes ctx with the data-dependent variant, which offers the
// strongest resistance to GPU cracking at the cost of exposing
// side-channel timing tied to the password.
func Argon2d(ctx *Context, outLen int, alloc Allocator) ([]byte, error) {
	return Hash(ctx, core.D, outLen, alloc)
}

// Argon2i hashes ctx with the data-independent variant, which avoids
// password-dependent memory access patterns entirely and is the
// recommended choice for password hashing under adversarial timing
// observation.
func Argon2i(ctx *Context, outLen int, alloc Allocator) ([]byte, error) {
	return Hash(ctx, core.I, outLen, alloc)
}

// Argon2di hashes ctx with the di hybrid: data-independent addressing
// during pass 0, data-dependent thereafter.
func Argon2di(ctx *Context, outLen int, alloc Allocator) ([]byte, error) {
	return Hash(ctx, core.DI, outLen, alloc)
}

// Argon2id hashes ctx with the id hybrid, the generally recommended
// default: data-independent addressing for the first half of pass 0,
// data-dependent for the rest.
func Argon2id(ctx *Context, outLen int, alloc Allocator) ([]byte, error) {
	return Hash(ctx, core.ID, outLen, alloc)
}

// Argon2ds hashes ctx with the data-dependent, S-box-mixing variant.
func Argon2ds(ctx *Context, outLen int, alloc Allocator) ([]byte, error) {
	return Hash(ctx, core.DS, outLen, alloc)
}

// Simple is the PHS-style convenience entry point: single-lane Argon2d
// over pwd and salt with no secret or associated data, matching the
// reference implementation's PHS function.
func Simple(pwd, salt []byte, timeCost, memoryCost uint32, outLen int) ([]byte, error) {
	ctx := &Context{
		Params: Params{
			TimeCost:   timeCost,
			MemoryCost: memoryCost,
			Lanes:      1,
		},
		Password: pwd,
		Salt:     salt,
	}
	return Argon2d(ctx, outLen, DefaultAllocator)
}

// Equal reports whether two tags are equal, comparing in constant time.
// Tag comparison is explicitly out of this package's core scope, but
// is provided here since callers otherwise reach for the same
// crypto/subtle call themselves.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
