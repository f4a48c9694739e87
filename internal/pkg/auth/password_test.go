package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasherCost(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, bcrypt.DefaultCost},
		{-1, bcrypt.DefaultCost},
		{bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{bcrypt.DefaultCost + 2, bcrypt.DefaultCost + 2},
	}
	for _, tc := range cases {
		if got := NewBcryptHasher(tc.in).cost; got != tc.want {
			t.Fatalf("NewBcryptHasher(%d).cost = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "secret-pass" {
		t.Fatalf("unexpected hash %q", hash)
	}
	if err := hasher.Compare(hash, "secret-pass"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	err := NewBcryptHasher(bcrypt.MinCost).Compare("not-a-hash", "secret")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected non-mismatch error for malformed hash, got %v", err)
	}
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
