package pow

import "testing"

func TestFrankenhashV0_Deterministic(t *testing.T) {
	pub := make([]byte, 64)
	for i := range pub {
		pub[i] = byte(i)
	}

	d1 := FrankenhashV0(pub)
	d2 := FrankenhashV0(pub)
	if d1 != d2 {
		t.Fatal("FrankenhashV0 is not deterministic for the same input")
	}
}

func TestFrankenhashV0_SensitiveToInput(t *testing.T) {
	pub1 := make([]byte, 64)
	pub2 := make([]byte, 64)
	pub2[0] = 1

	if FrankenhashV0(pub1) == FrankenhashV0(pub2) {
		t.Fatal("FrankenhashV0 produced identical digests for different inputs")
	}
}

func TestAddressV0(t *testing.T) {
	var digest [V0DigestSize]byte
	for i := range digest {
		digest[i] = byte(i)
	}
	addr := AddressV0(digest)
	want := [5]byte{59, 60, 61, 62, 63}
	if addr != want {
		t.Errorf("AddressV0() = %v, want %v", addr, want)
	}
}

func TestPassesV0(t *testing.T) {
	var low, high [V0DigestSize]byte
	low[0] = 16
	high[0] = 17
	if !PassesV0(low) {
		t.Error("PassesV0 should accept digest[0] == 16")
	}
	if PassesV0(high) {
		t.Error("PassesV0 should reject digest[0] == 17")
	}
}

// TestFrankenhashV0_FindsAcceptingInput runs the real search loop against a
// handful of attempts to exercise the full fill+mix pipeline end to end,
// without committing to the multi-second full search a real identity mint
// requires (acceptance probability is ~1/15 per attempt).
func TestFrankenhashV0_FindsAcceptingInput(t *testing.T) {
	pub := make([]byte, 64)
	for attempt := 0; attempt < 64; attempt++ {
		pub[0] = byte(attempt)
		digest := FrankenhashV0(pub)
		if PassesV0(digest) {
			return
		}
	}
	t.Skip("no accepting digest found within the bounded attempt budget; expected probabilistically, not a failure")
}
