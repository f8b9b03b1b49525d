package core

// Variant selects one of the five Argon2 addressing/mixing modes. The
// numeric values are the tags that get folded into the pre-hash and are
// fixed by the specification; they must never be renumbered.
type Variant uint32

const (
	D  Variant = 0 // data-dependent addressing
	I  Variant = 1 // data-independent addressing
	DI Variant = 2 // data-independent pass 0, data-dependent afterwards
	ID Variant = 3 // data-independent first half of pass 0, data-dependent afterwards
	DS Variant = 4 // data-dependent addressing, S-box mixing in the compressor
)

// String returns the canonical short name of the variant.
func (v Variant) String() string {
	switch v {
	case D:
		return "d"
	case I:
		return "i"
	case DI:
		return "di"
	case ID:
		return "id"
	case DS:
		return "ds"
	default:
		return "unknown"
	}
}

// Valid reports whether v is one of the five defined variants.
func (v Variant) Valid() bool {
	return v <= DS
}

// usesSBox reports whether the compressor should run the S-box inner
// mixing loop for this variant.
func (v Variant) usesSBox() bool {
	return v == DS
}

// dataIndependent reports whether slot (pass, slice) of this variant
// uses data-independent (counter-stream) addressing rather than
// data-dependent (previous-block-word) addressing.
func (v Variant) dataIndependent(pass, slice uint32) bool {
	switch v {
	case I:
		return true
	case DI:
		return pass == 0
	case ID:
		return pass == 0 && slice < SyncPoints/2
	default: // D, DS
		return false
	}
}
