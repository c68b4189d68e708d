package aes

import (
	"git.gammaspectra.live/P2Pool/softaes/types"
)

// BlockSize AES block size in bytes
const BlockSize = types.BlockSize

// State 4x4 byte matrix for one block, addressed as State[column][row].
// Column c holds input bytes 4c..4c+3, so each column is one 32-bit word of the block.
type State [4][4]byte

func StateFromBytes(buf []byte) (s State) {
	_ = buf[BlockSize-1]
	for c := range 4 {
		copy(s[c][:], buf[4*c:4*c+4])
	}
	return s
}

func StateFromBlock(b types.Block) State {
	return StateFromBytes(b[:])
}

// PutBytes writes the state into the first BlockSize bytes of buf
func (s *State) PutBytes(buf []byte) {
	_ = buf[BlockSize-1]
	for c := range 4 {
		copy(buf[4*c:4*c+4], s[c][:])
	}
}

func (s State) Block() (b types.Block) {
	s.PutBytes(b[:])
	return b
}

func (s State) Bytes() []byte {
	buf := make([]byte, BlockSize)
	s.PutBytes(buf)
	return buf
}

func (s State) String() string {
	return s.Block().String()
}

// word column c as a big-endian word
func (s *State) word(c int) uint32 {
	return uint32(s[c][0])<<24 | uint32(s[c][1])<<16 | uint32(s[c][2])<<8 | uint32(s[c][3])
}

func (s *State) setWord(c int, w uint32) {
	s[c][0] = byte(w >> 24)
	s[c][1] = byte(w >> 16)
	s[c][2] = byte(w >> 8)
	s[c][3] = byte(w)
}
