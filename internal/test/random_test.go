package test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

func TestRandomASCIIStringBounds(t *testing.T) {
	cases := []struct {
		min, max         int
		wantMin, wantMax int
	}{
		{5, 10, 5, 10},
		{3, 3, 3, 3},
		{0, 0, 1, 1},
		{4, 2, 4, 4},
	}
	for _, tc := range cases {
		for i := 0; i < 20; i++ {
			s := RandomASCIIString(tc.min, tc.max)
			if len(s) < tc.wantMin || len(s) > tc.wantMax {
				t.Fatalf("RandomASCIIString(%d, %d) length %d out of [%d, %d]", tc.min, tc.max, len(s), tc.wantMin, tc.wantMax)
			}
			if strings.Trim(s, nameAlphabet) != "" {
				t.Fatalf("unexpected characters in %q", s)
			}
		}
	}
}

func TestSeedUserEmailsAreDistinct(t *testing.T) {
	store := NewMemoryStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		u := store.SeedUser(model.AccountClient, decimal.Zero)
		if seen[u.Email] {
			t.Fatalf("duplicate seeded email %q", u.Email)
		}
		seen[u.Email] = true
	}
}
