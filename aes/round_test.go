package aes

import (
	"crypto/rand"
	"testing"
)

func sequentialState() (s State) {
	for i := range BlockSize {
		s[i/4][i%4] = byte(i)
	}
	return s
}

func TestShiftRows(t *testing.T) {
	s := sequentialState()
	ShiftRows(&s)

	want := [BlockSize]byte{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if got := s.Block(); got != want {
		t.Errorf("ShiftRows(...) = %x, want %x", got, want)
	}

	InvShiftRows(&s)
	if s != sequentialState() {
		t.Errorf("InvShiftRows(ShiftRows(s)) = %s, want %s", s, sequentialState())
	}
}

func TestMixColumns(t *testing.T) {
	vectors := []struct {
		in, out [4]byte
	}{
		{[4]byte{0xdb, 0x13, 0x53, 0x45}, [4]byte{0x8e, 0x4d, 0xa1, 0xbc}},
		{[4]byte{0xf2, 0x0a, 0x22, 0x5c}, [4]byte{0x9f, 0xdc, 0x58, 0x9d}},
		{[4]byte{0x01, 0x01, 0x01, 0x01}, [4]byte{0x01, 0x01, 0x01, 0x01}},
		{[4]byte{0xc6, 0xc6, 0xc6, 0xc6}, [4]byte{0xc6, 0xc6, 0xc6, 0xc6}},
		{[4]byte{0xd4, 0xd4, 0xd4, 0xd5}, [4]byte{0xd5, 0xd5, 0xd7, 0xd6}},
		{[4]byte{0x2d, 0x26, 0x31, 0x4c}, [4]byte{0x4d, 0x7e, 0xbd, 0xf8}},
	}

	for _, v := range vectors {
		s := State{v.in, v.in, v.in, v.in}
		MixColumns(&s)
		for c := range s {
			if s[c] != v.out {
				t.Errorf("MixColumns(%x) column %d = %x, want %x", v.in, c, s[c], v.out)
			}
		}

		InvMixColumns(&s)
		for c := range s {
			if s[c] != v.in {
				t.Errorf("InvMixColumns(%x) column %d = %x, want %x", v.out, c, s[c], v.in)
			}
		}
	}
}

func TestSubBytes(t *testing.T) {
	s := sequentialState()
	SubBytes(&s)
	for i := range BlockSize {
		if got := s[i/4][i%4]; got != fipsSbox[i] {
			t.Errorf("SubBytes byte %d = %#02x, want %#02x", i, got, fipsSbox[i])
		}
	}
	InvSubBytes(&s)
	if s != sequentialState() {
		t.Errorf("InvSubBytes(SubBytes(s)) = %s", s)
	}
}

func TestAddRoundKey(t *testing.T) {
	var buf [BlockSize * 2]byte
	_, _ = rand.Read(buf[:])
	s, k := StateFromBytes(buf[:BlockSize]), StateFromBytes(buf[BlockSize:])

	orig := s
	AddRoundKey(&s, &k)
	for i := range BlockSize {
		if got, want := s[i/4][i%4], buf[i]^buf[BlockSize+i]; got != want {
			t.Errorf("AddRoundKey byte %d = %#02x, want %#02x", i, got, want)
		}
	}

	AddRoundKey(&s, &k)
	if s != orig {
		t.Errorf("AddRoundKey applied twice = %s, want %s", s, orig)
	}
}
