package aes

import (
	"errors"
	"fmt"
)

var ErrInvalidKeyLength = errors.New("invalid key length")

// Schedule expanded round keys. Index 0 is applied before the first round, index Rounds() after the last one.
// Never modified after ExpandKey returns.
type Schedule []State

// Rounds number of rounds Nr
func (s Schedule) Rounds() int {
	return len(s) - 1
}

// KeySize size in bytes of the key the schedule was expanded from
func (s Schedule) KeySize() int {
	switch s.Rounds() {
	case 10:
		return 16
	case 12:
		return 24
	case 14:
		return 32
	}
	return 0
}

// Bytes round keys concatenated in schedule order
func (s Schedule) Bytes() []byte {
	buf := make([]byte, len(s)*BlockSize)
	for i := range s {
		s[i].PutBytes(buf[i*BlockSize:])
	}
	return buf
}

// Parameters returns the number of rounds Nr and of 32-bit key words Nw for a key of keySize bytes
func Parameters(keySize int) (rounds, words int, err error) {
	switch keySize {
	case 16:
		return 10, 4, nil
	case 24:
		return 12, 6, nil
	case 32:
		return 14, 8, nil
	}
	return 0, 0, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ErrInvalidKeyLength, keySize)
}

// Apply sbox to each byte in w.
func subw(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// Rotate left by one byte
func rotw(w uint32) uint32 { return w<<8 | w>>24 }

// ExpandKey FIPS-197 5.2 key expansion into Nr+1 round keys
func ExpandKey(key []byte) (Schedule, error) {
	nr, nw, err := Parameters(len(key))
	if err != nil {
		return nil, err
	}

	words := make([]uint32, 4*(nr+1))
	for i := range nw {
		words[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 | uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}

	for i := nw; i < len(words); i++ {
		t := words[i-1]
		if i%nw == 0 {
			t = subw(rotw(t)) ^ (uint32(roundConstants[i/nw]) << 24)
		} else if nw == 8 && i%4 == 0 {
			t = subw(t)
		}
		words[i] = words[i-nw] ^ t
	}

	schedule := make(Schedule, nr+1)
	for i := range words {
		schedule[i/4].setWord(i%4, words[i])
	}
	return schedule, nil
}
