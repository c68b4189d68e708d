package aes

import (
	stdaes "crypto/aes"
	"crypto/rand"
	"fmt"
	"testing"

	"git.gammaspectra.live/P2Pool/softaes/types"
	"git.gammaspectra.live/P2Pool/softaes/utils"
)

type blockVector struct {
	Key        types.Bytes
	Plaintext  types.Block
	Ciphertext types.Block
}

var blockVectors = []blockVector{
	// FIPS-197 Appendix B
	{
		Key:        types.MustBytesFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		Plaintext:  types.MustBlockFromString("3243f6a8885a308d313198a2e0370734"),
		Ciphertext: types.MustBlockFromString("3925841d02dc09fbdc118597196a0b32"),
	},
	// FIPS-197 Appendix C.1
	{
		Key:        types.MustBytesFromString("000102030405060708090a0b0c0d0e0f"),
		Plaintext:  types.MustBlockFromString("00112233445566778899aabbccddeeff"),
		Ciphertext: types.MustBlockFromString("69c4e0d86a7b0430d8cdb78070b4c55a"),
	},
	// FIPS-197 Appendix C.2
	{
		Key:        types.MustBytesFromString("000102030405060708090a0b0c0d0e0f1011121314151617"),
		Plaintext:  types.MustBlockFromString("00112233445566778899aabbccddeeff"),
		Ciphertext: types.MustBlockFromString("dda97ca4864cdfe06eaf70a0ec0d7191"),
	},
	// FIPS-197 Appendix C.3
	{
		Key:        types.MustBytesFromString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
		Plaintext:  types.MustBlockFromString("00112233445566778899aabbccddeeff"),
		Ciphertext: types.MustBlockFromString("8ea2b7ca516745bfeafc49904b496089"),
	},
}

func TestEncryptBlock(t *testing.T) {
	for _, v := range blockVectors {
		t.Run(fmt.Sprintf("AES-%d/%s", len(v.Key)*8, v.Plaintext), func(t *testing.T) {
			schedule, err := ExpandKey(v.Key)
			if err != nil {
				t.Fatal(err)
			}

			if got := EncryptBlock(StateFromBlock(v.Plaintext), schedule).Block(); got != v.Ciphertext {
				t.Errorf("EncryptBlock(...) = %s, want %s", got, v.Ciphertext)
			}
			if got := DecryptBlock(StateFromBlock(v.Ciphertext), schedule).Block(); got != v.Plaintext {
				t.Errorf("DecryptBlock(...) = %s, want %s", got, v.Plaintext)
			}
		})
	}
}

func TestBlockRoundTrip(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		t.Run(fmt.Sprintf("AES-%d", size*8), func(t *testing.T) {
			key := make([]byte, size)
			for range 64 {
				_, _ = rand.Read(key)
				schedule, err := ExpandKey(key)
				if err != nil {
					t.Fatal(err)
				}

				var block types.Block
				_, _ = rand.Read(block[:])

				ciphertext := EncryptBlock(StateFromBlock(block), schedule)
				if got := DecryptBlock(ciphertext, schedule).Block(); got != block {
					t.Fatalf("DecryptBlock(EncryptBlock(%s)) = %s with key %x", block, got, key)
				}
			}
		})
	}
}

// TestBlockMatchesStandardLibrary compares against crypto/aes for random keys and blocks
func TestBlockMatchesStandardLibrary(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		for range 32 {
			_, _ = rand.Read(key)

			reference, err := stdaes.NewCipher(key)
			if err != nil {
				t.Fatal(err)
			}
			c, err := NewCipher(key)
			if err != nil {
				t.Fatal(err)
			}

			var src, want, got [BlockSize]byte
			_, _ = rand.Read(src[:])

			reference.Encrypt(want[:], src[:])
			c.Encrypt(got[:], src[:])
			if got != want {
				t.Fatalf("Encrypt(%x) = %x, want %x with key %x", src, got, want, key)
			}

			reference.Decrypt(want[:], src[:])
			c.Decrypt(got[:], src[:])
			if got != want {
				t.Fatalf("Decrypt(%x) = %x, want %x with key %x", src, got, want, key)
			}
		}
	}
}

// TestKeySensitivity flips every key bit and requires every ciphertext block to change
func TestKeySensitivity(t *testing.T) {
	blocks := make([]types.Block, 4)
	for i := range blocks {
		_, _ = rand.Read(blocks[i][:])
	}

	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		_, _ = rand.Read(key)

		schedule, err := ExpandKey(key)
		if err != nil {
			t.Fatal(err)
		}

		base := make([]types.Block, len(blocks))
		for i := range blocks {
			base[i] = EncryptBlock(StateFromBlock(blocks[i]), schedule).Block()
		}

		for bit := range size * 8 {
			flipped := append([]byte(nil), key...)
			flipped[bit/8] ^= 1 << (bit % 8)

			flippedSchedule, err := ExpandKey(flipped)
			if err != nil {
				t.Fatal(err)
			}

			for i := range blocks {
				out := EncryptBlock(StateFromBlock(blocks[i]), flippedSchedule).Block()
				if utils.BitDistance(out, base[i]) == 0 {
					t.Errorf("AES-%d: flipping key bit %d left block %d unchanged", size*8, bit, i)
				}
			}
		}
	}
}

func TestCipherShortBuffers(t *testing.T) {
	c, err := NewCipher(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	if c.BlockSize() != BlockSize {
		t.Errorf("BlockSize() = %d, want %d", c.BlockSize(), BlockSize)
	}

	for name, f := range map[string]func(){
		"encrypt short src": func() { c.Encrypt(make([]byte, 16), make([]byte, 15)) },
		"encrypt short dst": func() { c.Encrypt(make([]byte, 15), make([]byte, 16)) },
		"decrypt short src": func() { c.Decrypt(make([]byte, 16), make([]byte, 15)) },
		"decrypt short dst": func() { c.Decrypt(make([]byte, 15), make([]byte, 16)) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			f()
		})
	}
}

func TestNewCipherInvalidKey(t *testing.T) {
	if _, err := NewCipher(make([]byte, 15)); err == nil {
		t.Error("NewCipher(15 bytes) succeeded")
	}
}

func BenchmarkEncryptBlock(b *testing.B) {
	for _, size := range []int{16, 24, 32} {
		b.Run(fmt.Sprintf("AES-%d", size*8), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(BlockSize)

			schedule, err := ExpandKey(make([]byte, size))
			if err != nil {
				b.Fatal(err)
			}
			var state State
			for b.Loop() {
				state = EncryptBlock(state, schedule)
			}
		})
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(BlockSize)

	schedule, err := ExpandKey(make([]byte, 16))
	if err != nil {
		b.Fatal(err)
	}
	var state State
	for b.Loop() {
		state = DecryptBlock(state, schedule)
	}
}

func BenchmarkExpandKey(b *testing.B) {
	b.ReportAllocs()
	key := make([]byte, 32)
	for b.Loop() {
		_, _ = ExpandKey(key)
	}
}
