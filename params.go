package argon2

import "github.com/magical/libargon2/internal/core"

// Bounds on Argon2 parameters, taken from the reference implementation's
// argon2.h limits.
const (
	MinOutLen = 4
	MaxOutLen = 1<<32 - 1

	MinPwdLen = 0
	MaxPwdLen = 1<<32 - 1

	MinSaltLen = 8
	MaxSaltLen = 1<<32 - 1

	MinSecretLen = 0
	MaxSecretLen = 1<<32 - 1

	MinADLen = 0
	MaxADLen = 1<<32 - 1

	MinTimeCost = 1
	MaxTimeCost = 1<<32 - 1

	MinLanes = 1
	MaxLanes = 1<<24 - 1

	MinMemoryCost = 8 // enforced per-lane below: memory_blocks >= 8*lanes
)

// version is the Argon2 version byte encoded into the pre-hash, fixed by
// this draft of the specification (original_source/Source/Core/
// argon2-core.h's VERSION_NUMBER); later Argon2 revisions raised this to
// 0x13, but that numbering does not apply here.
const version = 0x10

// Params holds the cost parameters and optional secret/associated data
// for a single Argon2 computation. It is the Go counterpart to the
// reference implementation's Argon2_Context.
type Params struct {
	// TimeCost is the number of passes over the memory matrix.
	TimeCost uint32
	// MemoryCost is the requested number of 1 KiB blocks. It is rounded
	// down to a multiple of 4*Lanes and up to at least 8*Lanes.
	MemoryCost uint32
	// Lanes is the degree of parallelism.
	Lanes uint32

	// Secret is optional keyed-hashing material, mixed into the
	// pre-hash. May be nil.
	Secret []byte
	// AD is optional associated data, mixed into the pre-hash. May be
	// nil.
	AD []byte

	// ClearPassword zeroes the password buffer after pre-hashing.
	ClearPassword bool
	// ClearSecret zeroes the secret buffer after pre-hashing.
	ClearSecret bool
}

// Validate checks the parameters and the password/salt/output lengths
// that accompany them, returning the first violated constraint as an
// Error. Go slices carry no separate null/length duality, so a nil
// buffer with nonzero length cannot occur and is not checked; the checks
// here only reject lengths and costs outside the documented ranges.
func (p *Params) Validate(pwdLen, saltLen, outLen int) error {
	if outLen < MinOutLen {
		return ErrOutputTooShort
	}
	if uint64(outLen) > MaxOutLen {
		return ErrOutputTooLong
	}
	if pwdLen < MinPwdLen {
		return ErrPwdTooShort
	}
	if uint64(pwdLen) > MaxPwdLen {
		return ErrPwdTooLong
	}
	if saltLen < MinSaltLen {
		return ErrSaltTooShort
	}
	if uint64(saltLen) > MaxSaltLen {
		return ErrSaltTooLong
	}
	if uint64(len(p.Secret)) > MaxSecretLen {
		return ErrSecretTooLong
	}
	if uint64(len(p.AD)) > MaxADLen {
		return ErrADTooLong
	}
	if p.TimeCost < MinTimeCost {
		return ErrTimeTooSmall
	}
	if uint64(p.TimeCost) > MaxTimeCost {
		return ErrTimeTooLarge
	}
	if p.Lanes < MinLanes {
		return ErrLanesTooFew
	}
	if uint64(p.Lanes) > MaxLanes {
		return ErrLanesTooMany
	}
	if p.MemoryCost < MinMemoryCost*p.Lanes {
		return ErrMemoryTooLittle
	}
	return nil
}

// memoryBlocks computes the actual number of blocks the matrix will
// allocate: m_cost rounded down to a multiple of SYNC_POINTS*lanes,
// after first rounding up to at least 2*SYNC_POINTS*lanes so every
// lane has a nonempty segment in every slice. This is the driver's
// resolution of the open "round up or reject" boundary question:
// Validate already rejects memory_cost < 8*lanes outright, so by the
// time memoryBlocks runs the value is always large enough to round
// without silently growing a rejected request.
func memoryBlocks(memoryCost, lanes uint32) uint32 {
	blocksPerLane := memoryCost / lanes
	blocksPerLane -= blocksPerLane % core.SyncPoints
	if blocksPerLane < 2*core.SyncPoints {
		blocksPerLane = 2 * core.SyncPoints
	}
	return blocksPerLane * lanes
}
