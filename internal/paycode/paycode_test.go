package paycode

import (
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := New()
		if !strings.HasPrefix(code, Prefix+" ") {
			t.Fatalf("expected prefix %q, got %q", Prefix+" ", code)
		}
		random := strings.TrimPrefix(code, Prefix+" ")
		if len(random) != Length {
			t.Fatalf("expected %d random symbols, got %d in %q", Length, len(random), code)
		}
		for _, r := range random {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("symbol %q outside alphabet in code %q", r, code)
			}
		}
	}
}

func TestNewExcludesAmbiguousSymbols(t *testing.T) {
	for _, forbidden := range "IO01" {
		if strings.ContainsRune(Alphabet, forbidden) {
			t.Fatalf("alphabet must not contain %q", forbidden)
		}
	}
	if len(Alphabet) != 32 {
		t.Fatalf("expected 32-symbol alphabet, got %d", len(Alphabet))
	}
}

func TestNewVaries(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[New()] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("expected generated codes to vary")
	}
}
