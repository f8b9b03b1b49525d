package argon2

import (
	"bytes"
	"testing"

	"github.com/magical/libargon2/internal/core"
)

func testContext() *Context {
	return &Context{
		Params: Params{
			TimeCost:   3,
			MemoryCost: 32,
			Lanes:      4,
		},
		Password: bytes.Repeat([]byte{0x01}, 32),
		Salt:     bytes.Repeat([]byte{0x02}, 16),
	}
}

func TestHashDeterministic(t *testing.T) {
	tag1, err := Argon2d(testContext(), 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	tag2, err := Argon2d(testContext(), 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tag1, tag2) {
		t.Error("Argon2d is not deterministic for identical inputs")
	}
	if len(tag1) != 32 {
		t.Errorf("tag length = %d, want 32", len(tag1))
	}
}

func TestHashVariantsDiffer(t *testing.T) {
	entries := []func(*Context, int, Allocator) ([]byte, error){
		Argon2d, Argon2i, Argon2di, Argon2id, Argon2ds,
	}
	var tags [][]byte
	for _, fn := range entries {
		tag, err := fn(testContext(), 32, DefaultAllocator)
		if err != nil {
			t.Fatal(err)
		}
		tags = append(tags, tag)
	}
	for a := 0; a < len(tags); a++ {
		for b := a + 1; b < len(tags); b++ {
			if bytes.Equal(tags[a], tags[b]) {
				t.Errorf("variant %d and %d produced identical tags", a, b)
			}
		}
	}
}

func TestHashCostParameterResponse(t *testing.T) {
	base, err := Argon2id(testContext(), 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}

	moreTime := testContext()
	moreTime.TimeCost = 4
	tagTime, err := Argon2id(moreTime, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, tagTime) {
		t.Error("increasing time cost did not change the tag")
	}

	moreMemory := testContext()
	moreMemory.MemoryCost = 64
	tagMemory, err := Argon2id(moreMemory, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, tagMemory) {
		t.Error("increasing memory cost did not change the tag")
	}

	moreLanes := testContext()
	moreLanes.Lanes = 8
	moreLanes.MemoryCost = 64
	tagLanes, err := Argon2id(moreLanes, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, tagLanes) {
		t.Error("increasing lanes did not change the tag")
	}
}

func TestHashOutputLengthResponse(t *testing.T) {
	tag16, err := Argon2id(testContext(), 16, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	tag32, err := Argon2id(testContext(), 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag16) != 16 || len(tag32) != 32 {
		t.Fatalf("got lengths %d, %d", len(tag16), len(tag32))
	}
	// H' mixes the requested output length into its input, so tags of
	// different lengths are unrelated rather than prefix-compatible.
	if bytes.Equal(tag16, tag32[:16]) {
		t.Error("tags of different requested lengths coincided on their shared prefix")
	}
}

func TestHashRejectsInvalidVariant(t *testing.T) {
	if _, err := Hash(testContext(), core.Variant(99), 32, DefaultAllocator); err != ErrIncorrectType {
		t.Errorf("got %v, want ErrIncorrectType", err)
	}
}

func TestHashRejectsNilContext(t *testing.T) {
	if _, err := Hash(nil, core.D, 32, DefaultAllocator); err != ErrIncorrectParameter {
		t.Errorf("got %v, want ErrIncorrectParameter", err)
	}
}

func TestHashValidatesParams(t *testing.T) {
	ctx := testContext()
	ctx.Salt = ctx.Salt[:4] // below MinSaltLen
	if _, err := Argon2d(ctx, 32, DefaultAllocator); err != ErrSaltTooShort {
		t.Errorf("got %v, want ErrSaltTooShort", err)
	}
}

func TestHashWithSecretAndAD(t *testing.T) {
	plain := testContext()
	tagPlain, err := Argon2id(plain, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}

	withSecret := testContext()
	withSecret.Secret = []byte{0x03, 0x03, 0x03}
	tagSecret, err := Argon2id(withSecret, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(tagPlain, tagSecret) {
		t.Error("secret did not affect the tag")
	}

	withAD := testContext()
	withAD.AD = []byte{0x04, 0x04, 0x04, 0x04}
	tagAD, err := Argon2id(withAD, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(tagPlain, tagAD) {
		t.Error("associated data did not affect the tag")
	}
}

func TestHashWithPooledAllocator(t *testing.T) {
	pool := NewPooledAllocator()
	tag1, err := Argon2id(testContext(), 32, pool)
	if err != nil {
		t.Fatal(err)
	}
	tag2, err := Argon2id(testContext(), 32, pool)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tag1, tag2) {
		t.Error("pooled allocator reuse changed the result")
	}
}

func TestSimpleMatchesArgon2d(t *testing.T) {
	pwd := bytes.Repeat([]byte{0x01}, 32)
	salt := bytes.Repeat([]byte{0x02}, 16)

	tag, err := Simple(pwd, salt, 3, 32, 32)
	if err != nil {
		t.Fatal(err)
	}

	ctx := &Context{
		Params:   Params{TimeCost: 3, MemoryCost: 32, Lanes: 1},
		Password: pwd,
		Salt:     salt,
	}
	want, err := Argon2d(ctx, 32, DefaultAllocator)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tag, want) {
		t.Error("Simple did not match single-lane Argon2d")
	}
}

func TestClearPasswordZeroesBuffer(t *testing.T) {
	ctx := testContext()
	ctx.ClearPassword = true
	ctx.ClearSecret = true
	ctx.Secret = []byte{9, 9, 9}

	if _, err := Argon2d(ctx, 32, DefaultAllocator); err != nil {
		t.Fatal(err)
	}
	for _, b := range ctx.Password {
		if b != 0 {
			t.Fatal("password was not cleared")
		}
	}
	for _, b := range ctx.Secret {
		if b != 0 {
			t.Fatal("secret was not cleared")
		}
	}
}

func TestEqual(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 3}
	c := []byte{1, 2, 4}
	if !Equal(a, b) {
		t.Error("Equal(a, b) = false, want true")
	}
	if Equal(a, c) {
		t.Error("Equal(a, c) = true, want false")
	}
	if Equal(a, []byte{1, 2}) {
		t.Error("Equal with mismatched lengths = true, want false")
	}
}
