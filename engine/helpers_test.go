package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	fasthex "github.com/tmthrgd/go-hex"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	buf, err := fasthex.DecodeString(s)
	require.NoError(t, err)
	return buf
}

func hexString(buf []byte) string {
	return fasthex.EncodeToString(buf)
}
