package pow

import "testing"

func TestSortHashV1_Deterministic(t *testing.T) {
	input := make([]byte, 114)
	for i := range input {
		input[i] = byte(i)
	}

	pass1, digest1 := SortHashV1(input)
	pass2, digest2 := SortHashV1(input)
	if pass1 != pass2 || digest1 != digest2 {
		t.Fatal("SortHashV1 is not deterministic for the same input")
	}
}

func TestSortHashV1_SensitiveToNonce(t *testing.T) {
	input1 := make([]byte, 114)
	input2 := make([]byte, 114)
	input2[0] = 1 // the nonce occupies byte 0 of the compound public image

	_, digest1 := SortHashV1(input1)
	_, digest2 := SortHashV1(input2)
	if digest1 == digest2 {
		t.Fatal("SortHashV1 produced identical digests for different nonce values")
	}
}

// TestSortHashV1_FindsAcceptingInput exercises the fill+sort pipeline across
// a bounded number of distinct inputs (every nonce value, combined with four
// values of the following byte). Acceptance probability is 1/180 per
// attempt, so this loop is sized to be overwhelmingly likely to hit one
// without paying for a full identity mint's worth of attempts.
func TestSortHashV1_FindsAcceptingInput(t *testing.T) {
	input := make([]byte, 114)
	for nonce := 0; nonce < 1024; nonce++ {
		input[0] = byte(nonce)
		input[1] = byte(nonce >> 8)
		if pass, _ := SortHashV1(input); pass {
			return
		}
	}
	t.Skip("no accepting digest found within the bounded attempt budget; expected probabilistically, not a failure")
}
