package aes

import "testing"

// mulReference carry-less multiply followed by polynomial reduction
func mulReference(a, b byte) byte {
	var p uint16
	for i := range 8 {
		if b&(1<<i) != 0 {
			p ^= uint16(a) << i
		}
	}
	for i := 15; i >= 8; i-- {
		if p&(1<<i) != 0 {
			p ^= poly << (i - 8)
		}
	}
	return byte(p)
}

func TestMul(t *testing.T) {
	// FIPS-197 4.2 and 4.2.1
	vectors := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x57, 0x13, 0xfe},
		{0x00, 0xff, 0x00},
		{0x01, 0xff, 0xff},
	}
	for _, v := range vectors {
		if got := Mul(v.a, v.b); got != v.want {
			t.Errorf("Mul(%#02x, %#02x) = %#02x, want %#02x", v.a, v.b, got, v.want)
		}
	}

	for a := range 256 {
		for b := range 256 {
			got, want := Mul(byte(a), byte(b)), mulReference(byte(a), byte(b))
			if got != want {
				t.Fatalf("Mul(%#02x, %#02x) = %#02x, want %#02x", a, b, got, want)
			}
		}
	}
}

func TestXtime(t *testing.T) {
	for i := range 256 {
		if got, want := xtime(byte(i)), Mul(byte(i), 2); got != want {
			t.Errorf("xtime(%#02x) = %#02x, want %#02x", i, got, want)
		}
	}
}
