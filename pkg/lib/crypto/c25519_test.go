package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestC25519_Generate(t *testing.T) {
	pub, priv, err := GenerateC25519(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateC25519() error = %v", err)
	}

	if len(pub.Raw()) != C25519PublicKeySize {
		t.Errorf("PublicKey.Raw() len = %d, want %d", len(pub.Raw()), C25519PublicKeySize)
	}
	if len(priv.Raw()) != C25519PrivateKeySize {
		t.Errorf("PrivateKey.Raw() len = %d, want %d", len(priv.Raw()), C25519PrivateKeySize)
	}
	if !priv.Public().Equals(pub) {
		t.Error("priv.Public() does not match the public key returned by GenerateC25519")
	}
}

func TestC25519_SignVerify(t *testing.T) {
	pub, priv, _ := GenerateC25519(rand.Reader)
	data := []byte("test message")

	sig := priv.Sign(data)
	if len(sig) != C25519SignatureSize {
		t.Errorf("Sign() len = %d, want %d", len(sig), C25519SignatureSize)
	}
	if !pub.Verify(data, sig) {
		t.Error("Verify() = false, want true")
	}
	if pub.Verify([]byte("wrong message"), sig) {
		t.Error("Verify(wrong message) = true, want false")
	}
}

func TestC25519_Agree(t *testing.T) {
	pubA, privA, _ := GenerateC25519(rand.Reader)
	pubB, privB, _ := GenerateC25519(rand.Reader)

	secretA, err := privA.Agree(pubB)
	if err != nil {
		t.Fatalf("A.Agree(B) error = %v", err)
	}
	secretB, err := privB.Agree(pubA)
	if err != nil {
		t.Fatalf("B.Agree(A) error = %v", err)
	}
	if secretA != secretB {
		t.Error("ECDH shared secrets are not symmetric")
	}
}

func TestC25519_MarshalRoundTrip(t *testing.T) {
	pub, priv, _ := GenerateC25519(rand.Reader)

	pub2, err := UnmarshalC25519PublicKey(pub.Raw())
	if err != nil {
		t.Fatalf("UnmarshalC25519PublicKey() error = %v", err)
	}
	if !bytes.Equal(pub.Raw(), pub2.Raw()) {
		t.Error("public key round-trip mismatch")
	}

	priv2, err := UnmarshalC25519PrivateKey(priv.Raw())
	if err != nil {
		t.Fatalf("UnmarshalC25519PrivateKey() error = %v", err)
	}
	if !bytes.Equal(priv.Raw(), priv2.Raw()) {
		t.Error("private key round-trip mismatch")
	}
}

func TestC25519_UnmarshalRejectsBadSize(t *testing.T) {
	if _, err := UnmarshalC25519PublicKey(make([]byte, 10)); err == nil {
		t.Error("UnmarshalC25519PublicKey(short) should fail")
	}
	if _, err := UnmarshalC25519PrivateKey(make([]byte, 10)); err == nil {
		t.Error("UnmarshalC25519PrivateKey(short) should fail")
	}
}
