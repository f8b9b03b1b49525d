package argon2

import (
	"encoding/binary"

	"github.com/magical/libargon2/internal/blake2b"
	"github.com/magical/libargon2/internal/core"
)

// preHash builds H0, the 64-byte seed the first two blocks of every lane
// are derived from. The wire layout is fixed by the algorithm: each
// variable-length field is preceded by its own little-endian uint32
// length, in the order lanes, outlen, m_cost, t_cost, version,
// variant, pwd, salt, secret, ad.
func preHash(p *Params, variant core.Variant, pwd, salt []byte, outLen int) [blake2b.Size]byte {
	buf := make([]byte, 0, 4*10+len(pwd)+len(salt)+len(p.Secret)+len(p.AD))

	buf = appendUint32(buf, p.Lanes)
	buf = appendUint32(buf, uint32(outLen))
	buf = appendUint32(buf, p.MemoryCost) // raw, caller-supplied m_cost, before rounding
	buf = appendUint32(buf, p.TimeCost)
	buf = appendUint32(buf, version)
	buf = appendUint32(buf, uint32(variant))

	buf = appendBuffer(buf, pwd)
	buf = appendBuffer(buf, salt)
	buf = appendBuffer(buf, p.Secret)
	buf = appendBuffer(buf, p.AD)

	return blake2b.H(buf)
}

func appendUint32(dst []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(dst, tmp[:]...)
}

func appendBuffer(dst []byte, buf []byte) []byte {
	dst = appendUint32(dst, uint32(len(buf)))
	return append(dst, buf...)
}
