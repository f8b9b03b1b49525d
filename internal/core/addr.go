package core

import "github.com/magical/libargon2/block"

// SyncPoints is the number of segments (synchronization points) per
// lane per pass.
const SyncPoints = 4

// AddressesPerBlock is the number of pseudo-random address words
// produced by one data-independent address-stream compression.
const AddressesPerBlock = block.Words

// Position identifies the slot currently being filled: which pass,
// lane, slice, and index within the slice.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// addressStream produces the data-independent pseudo-random words for
// one segment by repeatedly compressing a counter-indexed input block
// encoding (pass, lane, slice, memoryBlocks, passes, variant, counter)
// against the zero block, twice per counter value, per the Argon2
// specification for data-independent addressing. The counter advances
// every AddressesPerBlock words consumed.
//
// Grounded on the address-generation loop in
// other_examples/golang-crypto__argon2.go's processSegment (the
// `in`/`addresses`/`zero` triple and the double processBlock call).
type addressStream struct {
	in, addresses, zero block.Block
	counter             uint64
	cursor              int
}

func newAddressStream(pos Position, memoryBlocks, passes uint32, variant Variant) *addressStream {
	s := &addressStream{}
	s.in[0] = uint64(pos.Pass)
	s.in[1] = uint64(pos.Lane)
	s.in[2] = uint64(pos.Slice)
	s.in[3] = uint64(memoryBlocks)
	s.in[4] = uint64(passes)
	s.in[5] = uint64(variant)
	s.cursor = AddressesPerBlock // force refresh on first Next
	return s
}

func (s *addressStream) refresh() {
	s.counter++
	s.in[6] = s.counter
	compress(&s.addresses, &s.in, &s.zero, nil, false)
	compress(&s.addresses, &s.addresses, &s.zero, nil, false)
	s.cursor = 0
}

// Next returns the next pseudo-random address word in the stream.
func (s *addressStream) Next() uint64 {
	if s.cursor == AddressesPerBlock {
		s.refresh()
	}
	w := s.addresses[s.cursor]
	s.cursor++
	return w
}

// sameLane reports whether the reference block for this slot must come
// from the slot's own lane: always true for the very first segment
// (pass 0, slice 0), otherwise true iff the high 32 bits of j, taken
// modulo the lane count, equal the current lane.
func sameLane(pos Position, j uint64, numLanes uint32) bool {
	if pos.Pass == 0 && pos.Slice == 0 {
		return true
	}
	return uint32(j>>32)%numLanes == pos.Lane
}

// refBlock computes the reference lane and in-lane index for slot pos
// given pseudo-random word j, following the skewed distribution that
// favors recently-written blocks. The formula (and its pass==0/cross-
// lane edge cases) is grounded on the proven-correct indexAlpha/phi pair
// in other_examples/golang-crypto__argon2.go, the pack's verified port
// of the reference algorithm; it resolves the "subtle" W-boundary case
// spec.md flags as an open question by reusing that known-correct
// derivation rather than re-deriving it from the prose description.
func refBlock(pos Position, j uint64, numLanes, laneLength, segmentLength uint32) (refLane, refIndex uint32) {
	refLane = uint32(j>>32) % numLanes
	if sameLane(pos, j, numLanes) {
		refLane = pos.Lane
	}

	m := 3 * segmentLength
	s := ((pos.Slice + 1) % SyncPoints) * segmentLength
	if pos.Lane == refLane {
		m += pos.Index
	}
	if pos.Pass == 0 {
		m = pos.Slice * segmentLength
		s = 0
		if pos.Slice == 0 || pos.Lane == refLane {
			m += pos.Index
		}
	}
	if pos.Index == 0 || pos.Lane == refLane {
		m--
	}

	refIndex = phi(j, uint64(m), uint64(s), laneLength)
	return refLane, refIndex
}

// phi maps pseudo-random word j onto a relative position within an
// m-block reference window starting at s, using the quadratic skew
// x = J1^2/2^32 that biases selection toward the most recently written
// blocks (J1 = low 32 bits of j).
func phi(j, m, s uint64, laneLength uint32) uint32 {
	p := j & 0xFFFFFFFF
	p = (p * p) >> 32
	p = (p * m) >> 32
	return uint32((s + m - (p + 1)) % uint64(laneLength))
}
