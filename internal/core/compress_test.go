package core

import (
	"testing"

	"github.com/magical/libargon2/block"
)

func fillBlock(b *block.Block, seed uint64) {
	for i := range b {
		b[i] = seed + uint64(i)*0x9e3779b97f4a7c15
	}
}

func TestCompressDeterministic(t *testing.T) {
	var prev, ref, next1, next2 block.Block
	fillBlock(&prev, 1)
	fillBlock(&ref, 2)

	compress(&next1, &prev, &ref, nil, false)
	compress(&next2, &prev, &ref, nil, false)

	if next1 != next2 {
		t.Error("compress is not deterministic")
	}
}

func TestCompressAccumulates(t *testing.T) {
	var prev, ref, next block.Block
	fillBlock(&prev, 1)
	fillBlock(&ref, 2)
	fillBlock(&next, 3)
	before := next

	compress(&next, &prev, &ref, nil, true)

	var plain block.Block
	compress(&plain, &prev, &ref, nil, false)

	var want block.Block
	block.XorInto(&want, &plain, &before)
	if next != want {
		t.Error("compress with accumulate=true did not XOR into the existing block")
	}
}

func TestCompressSBoxChangesOutput(t *testing.T) {
	var prev, ref, plain, withSBox block.Block
	fillBlock(&prev, 5)
	fillBlock(&ref, 9)

	var sbox SBox
	for i := range sbox {
		sbox[i] = uint64(i) * 0x2545f4914f6cdd1d
	}

	compress(&plain, &prev, &ref, nil, false)
	compress(&withSBox, &prev, &ref, &sbox, false)

	if plain == withSBox {
		t.Error("S-box mixing did not change the compression output")
	}
}

func TestRefreshSBoxDeterministic(t *testing.T) {
	var b00 block.Block
	fillBlock(&b00, 42)

	var s1, s2 SBox
	RefreshSBox(&s1, &b00)
	RefreshSBox(&s2, &b00)

	if s1 != s2 {
		t.Error("RefreshSBox is not deterministic")
	}
}

func TestVariantSchedule(t *testing.T) {
	tests := []struct {
		v           Variant
		pass, slice uint32
		want        bool
	}{
		{D, 0, 0, false},
		{D, 5, 3, false},
		{I, 0, 0, true},
		{I, 5, 3, true},
		{DI, 0, 0, true},
		{DI, 0, 3, true},
		{DI, 1, 0, false},
		{ID, 0, 0, true},
		{ID, 0, 1, true},
		{ID, 0, 2, false},
		{ID, 0, 3, false},
		{ID, 1, 0, false},
		{DS, 0, 0, false},
	}
	for _, tt := range tests {
		got := tt.v.dataIndependent(tt.pass, tt.slice)
		if got != tt.want {
			t.Errorf("%s.dataIndependent(pass=%d, slice=%d) = %v, want %v", tt.v, tt.pass, tt.slice, got, tt.want)
		}
	}
}

func TestVariantUsesSBox(t *testing.T) {
	for _, v := range []Variant{D, I, DI, ID} {
		if v.usesSBox() {
			t.Errorf("%s.usesSBox() = true, want false", v)
		}
	}
	if !DS.usesSBox() {
		t.Error("DS.usesSBox() = false, want true")
	}
}

func TestVariantValid(t *testing.T) {
	for _, v := range []Variant{D, I, DI, ID, DS} {
		if !v.Valid() {
			t.Errorf("%s.Valid() = false, want true", v)
		}
	}
	if Variant(5).Valid() {
		t.Error("Variant(5).Valid() = true, want false")
	}
}
