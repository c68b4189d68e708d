package aes

import (
	"crypto/cipher"
)

// Cipher crypto/cipher.Block over an expanded Schedule. Safe for concurrent use.
type Cipher struct {
	schedule Schedule
}

var _ cipher.Block = (*Cipher)(nil)

func NewCipher(key []byte) (*Cipher, error) {
	schedule, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: schedule}, nil
}

// NewCipherFromSchedule wraps an already expanded schedule, which must not be modified afterwards
func NewCipherFromSchedule(schedule Schedule) *Cipher {
	return &Cipher{schedule: schedule}
}

func (c *Cipher) Schedule() Schedule {
	return c.schedule
}

func (c *Cipher) BlockSize() int {
	return BlockSize
}

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("softaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("softaes: output not full block")
	}
	state := EncryptBlock(StateFromBytes(src), c.schedule)
	state.PutBytes(dst)
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("softaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("softaes: output not full block")
	}
	state := DecryptBlock(StateFromBytes(src), c.schedule)
	state.PutBytes(dst)
}
