// Package blake2b adapts golang.org/x/crypto/blake2b into the fixed and
// variable-length hash oracle Argon2 is specified against: H, the plain
// 64-byte BLAKE2b digest, and H', the variable-length extension used for
// pre-hash expansion, lane seeding, and tag production.
package blake2b

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Size is the output length of H, the fixed-output hash.
const Size = blake2b.Size // 64

// H computes the fixed 64-byte BLAKE2b digest of in.
func H(in []byte) [Size]byte {
	return blake2b.Sum512(in)
}

// HPrime computes the variable-length hash extension H'(in, outLen):
// if outLen <= 64, it is a single BLAKE2b call over le32(outLen) || in,
// truncated to outLen bytes; otherwise it chains 64-byte BLAKE2b outputs,
// emitting the first 32 bytes of each intermediate digest and the full
// (or truncated) last digest.
func HPrime(out []byte, in []byte) {
	outLen := uint32(len(out))
	if len(out) == 0 {
		return
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], outLen)

	if outLen <= uint32(Size) {
		h, err := blake2b.New(len(out), nil)
		if err != nil {
			// Size is in [1,64]; New never rejects a size in that range.
			panic("blake2b: unexpected New error for short H': " + err.Error())
		}
		h.Write(lenPrefix[:])
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	h, _ := blake2b.New512(nil)
	h.Write(lenPrefix[:])
	h.Write(in)
	v := h.Sum(nil)

	copied := copy(out, v[:32])
	for copied < len(out) {
		remaining := len(out) - copied
		size := 64
		toCopy := 32
		if remaining <= 64 {
			size = remaining
			toCopy = remaining
		}
		h2, _ := blake2b.New(size, nil)
		h2.Write(v)
		v = h2.Sum(nil)
		copied += copy(out[copied:], v[:toCopy])
	}
}
