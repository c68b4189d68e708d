package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// BlockSize AES block size in bytes, identical for all key sizes
const BlockSize = 16

//nolint:recvcheck
type Block [BlockSize]byte

var ZeroBlock Block

func (b Block) MarshalJSON() ([]byte, error) {
	var buf [BlockSize*2 + 2]byte
	buf[0] = '"'
	buf[BlockSize*2+1] = '"'
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}

	if len(buf) != BlockSize*2+2 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("wrong block size")
	}

	if _, err := fasthex.Decode(b[:], buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

func MustBytes16FromString[T ~[16]byte](s string) T {
	if b, err := Bytes16FromString[T](s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func Bytes16FromString[T ~[16]byte](s string) (T, error) {
	var b T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return b, err
	} else {
		if len(buf) != 16 {
			return b, errors.New("wrong size")
		}
		copy(b[:], buf)
		return b, nil
	}
}

func MustBlockFromString(s string) Block {
	return MustBytes16FromString[Block](s)
}

func BlockFromString(s string) (Block, error) {
	return Bytes16FromString[Block](s)
}

// BlockFromBytes copies buf into a Block. Short input is zero padded on the right, long input truncated.
func BlockFromBytes(buf []byte) (b Block) {
	copy(b[:], buf)
	return
}

func (b Block) Slice() []byte {
	return b[:]
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

func BytesFromString(s string) (Bytes, error) {
	return fasthex.DecodeString(s)
}

func MustBytesFromString(s string) Bytes {
	if b, err := BytesFromString(s); err != nil {
		panic(err)
	} else {
		return b
	}
}
