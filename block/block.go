// Package block implements the 1024-byte memory block that is the
// alphabet of the Argon2 memory-hard computation: its storage layout,
// the XOR and copy primitives, and the BLAKE2b-derived permutation P
// used by the compression function.
package block

import "encoding/binary"

const (
	// Size is the size of an Argon2 memory block in bytes.
	Size = 1024

	// Words is the number of 64-bit words in a block (1024 / 8).
	Words = 128
)

// Block is a 1024-byte Argon2 memory block, viewed as 128 little-endian
// 64-bit words (equivalently 8 rows of 16 words, or an 8x8 matrix of
// 16-byte registers). No bounds checking is performed on word access;
// callers only ever index with compile-time-fixed constants or loop
// bounds derived from Words.
type Block [Words]uint64

// Zero clears every word of the block.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// Copy sets b to a copy of src.
func (b *Block) Copy(src *Block) {
	*b = *src
}

// XOR XORs other into b in place: b[i] ^= other[i] for all i.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// XorInto sets dst = a XOR b. dst may alias a or b.
func XorInto(dst, a, b *Block) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// FromBytes decodes 1024 little-endian bytes into the block.
func (b *Block) FromBytes(data []byte) {
	for i := 0; i < Words; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : i*8+8])
	}
}

// AppendBytes appends the block's little-endian byte encoding to dst and
// returns the extended slice.
func (b *Block) AppendBytes(dst []byte) []byte {
	var buf [8]byte
	for _, w := range b {
		binary.LittleEndian.PutUint64(buf[:], w)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// Permute applies the Argon2 permutation P in place: PermuteRows
// followed by PermuteColumns. Most callers want the whole permutation;
// the ds variant's S-box mixing step runs strictly between the two
// halves and so calls them separately instead.
func (b *Block) Permute() {
	b.PermuteRows()
	b.PermuteColumns()
}

// PermuteRows applies the BLAKE2b round function G across each of the
// block's 8 rows of 16 words.
func (b *Block) PermuteRows() {
	for row := 0; row < Words; row += 16 {
		gRound(b[row : row+16])
	}
}

// PermuteColumns applies G across each of the block's 8 columns, where
// the block is viewed as an 8x8 matrix of 16-byte (two-word) registers.
func (b *Block) PermuteColumns() {
	var col [16]uint64
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			col[2*i] = b[i*16+2*j]
			col[2*i+1] = b[i*16+2*j+1]
		}
		gRound(col[:])
		for i := 0; i < 8; i++ {
			b[i*16+2*j] = col[2*i]
			b[i*16+2*j+1] = col[2*i+1]
		}
	}
}

// g is the BLAKE2b mixing function, applied to four 64-bit words.
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a += b
	d = rotr64(d^a, 32)
	c += d
	b = rotr64(b^c, 24)

	a += b
	d = rotr64(d^a, 16)
	c += d
	b = rotr64(b^c, 63)

	return a, b, c, d
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// gRound applies one BLAKE2b round to a 16-word register group: G over
// its four columns, then G over its four diagonals.
func gRound(v []uint64) {
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
