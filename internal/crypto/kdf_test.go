package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	secret := []byte("correct horse battery staple")
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := DeriveKey(secret, salt, 1000)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := DeriveKey(secret, salt, 1000)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same secret+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	secret := []byte("same secret")

	k1, err := DeriveKey(secret, bytes.Repeat([]byte{0x01}, SaltSize), 1000)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := DeriveKey(secret, bytes.Repeat([]byte{0x02}, SaltSize), 1000)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DifferentIterationsProduceDifferentKey(t *testing.T) {
	secret := []byte("same secret")
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	k1, _ := DeriveKey(secret, salt, 1)
	k2, _ := DeriveKey(secret, salt, 2)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different iteration counts")
	}
}

func TestDeriveKey_InvalidInput(t *testing.T) {
	validSalt := make([]byte, SaltSize)

	tests := []struct {
		name       string
		secret     []byte
		salt       []byte
		iterations int
	}{
		{"empty secret", nil, validSalt, 1},
		{"short salt", []byte("pw"), make([]byte, 8), 1},
		{"long salt", []byte("pw"), make([]byte, 32), 1},
		{"zero iterations", []byte("pw"), validSalt, 0},
		{"negative iterations", []byte("pw"), validSalt, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.secret, tt.salt, tt.iterations)
			if !errors.Is(err, ErrKeyDerivation) {
				t.Fatalf("err = %v, want ErrKeyDerivation", err)
			}
			if key != nil {
				t.Fatalf("expected no key on failure")
			}
		})
	}
}
