package aes

// EncryptBlock FIPS-197 5.1 Cipher. schedule must come from ExpandKey.
func EncryptBlock(state State, schedule Schedule) State {
	nr := schedule.Rounds()

	AddRoundKey(&state, &schedule[0])

	for r := 1; r < nr; r++ {
		SubBytes(&state)
		ShiftRows(&state)
		MixColumns(&state)
		AddRoundKey(&state, &schedule[r])
	}

	// final round has no MixColumns
	SubBytes(&state)
	ShiftRows(&state)
	AddRoundKey(&state, &schedule[nr])

	return state
}

// DecryptBlock FIPS-197 5.3 InvCipher, walking the schedule backwards.
// There is no integrity check: a wrong key or corrupted block yields garbage without error.
func DecryptBlock(state State, schedule Schedule) State {
	nr := schedule.Rounds()

	AddRoundKey(&state, &schedule[nr])
	InvShiftRows(&state)
	InvSubBytes(&state)

	for r := nr - 1; r > 0; r-- {
		AddRoundKey(&state, &schedule[r])
		InvMixColumns(&state)
		InvShiftRows(&state)
		InvSubBytes(&state)
	}

	AddRoundKey(&state, &schedule[0])

	return state
}
