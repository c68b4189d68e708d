package mode

import (
	"fmt"
	"strings"
)

type Mode uint8

const (
	ECB = Mode(iota)
	CBC
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts mode names case-insensitively
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ECB":
		return ECB, nil
	case "CBC":
		return CBC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(buf []byte) error {
	parsed, err := ParseMode(string(buf))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

type Direction uint8

const (
	Encrypt = Direction(iota)
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}
