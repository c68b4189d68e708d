package aes

// mixMatrix MixColumns coefficients, FIPS-197 5.1.3
var mixMatrix = [4][4]byte{
	{2, 3, 1, 1},
	{1, 2, 3, 1},
	{1, 1, 2, 3},
	{3, 1, 1, 2},
}

// invMixMatrix InvMixColumns coefficients, FIPS-197 5.3.3
var invMixMatrix = [4][4]byte{
	{14, 11, 13, 9},
	{9, 14, 11, 13},
	{13, 9, 14, 11},
	{11, 13, 9, 14},
}

func SubBytes(s *State) {
	for c := range s {
		for r := range s[c] {
			s[c][r] = sbox[s[c][r]]
		}
	}
}

func InvSubBytes(s *State) {
	for c := range s {
		for r := range s[c] {
			s[c][r] = invSbox[s[c][r]]
		}
	}
}

// ShiftRows cyclically shifts row r left by r positions
func ShiftRows(s *State) {
	old := *s
	for c := range 4 {
		for r := 1; r < 4; r++ {
			s[c][r] = old[(c+r)%4][r]
		}
	}
}

// InvShiftRows cyclically shifts row r right by r positions
func InvShiftRows(s *State) {
	old := *s
	for c := range 4 {
		for r := 1; r < 4; r++ {
			s[(c+r)%4][r] = old[c][r]
		}
	}
}

func mixColumn(col *[4]byte, m *[4][4]byte) {
	in := *col
	for i := range 4 {
		col[i] = Mul(m[i][0], in[0]) ^ Mul(m[i][1], in[1]) ^ Mul(m[i][2], in[2]) ^ Mul(m[i][3], in[3])
	}
}

// MixColumns multiplies every column by mixMatrix over GF(2⁸)
func MixColumns(s *State) {
	for c := range s {
		mixColumn(&s[c], &mixMatrix)
	}
}

// InvMixColumns multiplies every column by invMixMatrix over GF(2⁸)
func InvMixColumns(s *State) {
	for c := range s {
		mixColumn(&s[c], &invMixMatrix)
	}
}

func AddRoundKey(s *State, roundKey *State) {
	for c := range s {
		for r := range s[c] {
			s[c][r] ^= roundKey[c][r]
		}
	}
}
