package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash equals plaintext")
	}

	ok, err := h.Verify("pw123", hash)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v", ok, err)
	}
	ok, err = h.Verify("wrong", hash)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v", ok, err)
	}
	if _, err := h.Verify("pw123", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	t.Parallel()

	if got := NewBcryptHasher(1).cost; got != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MinCost)
	}
	if got := NewBcryptHasher(99).cost; got != bcrypt.MaxCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MaxCost)
	}
}

func TestBcryptHasherLongPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("a", MaxPasswordBytes+8)
	if _, err := h.Hash(long); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("Hash(long) error = %v, want ErrPasswordTooLong", err)
	}
	if _, err := h.Hash(long[:MaxPasswordBytes]); err != nil {
		t.Fatalf("Hash(72 bytes) error: %v", err)
	}

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	ok, err := h.Verify(long, hash)
	if err != nil || ok {
		t.Fatalf("Verify(long) = %v, %v", ok, err)
	}
}
