package core

import (
	"slices"
	"testing"
)

func TestPermutationCoversAllIndices(t *testing.T) {
	rng := NewRNG(7)
	perm := rng.Permutation(80)
	if len(perm) != 80 {
		t.Fatalf("len = %d, expected 80", len(perm))
	}
	sorted := slices.Clone(perm)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("permutation missing index %d", i)
		}
	}
	if rng.Permutation(0) != nil {
		t.Fatal("empty permutation should be nil")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	if !slices.Equal(a.Permutation(50), b.Permutation(50)) {
		t.Fatal("same seed produced different permutations")
	}
	bufA, bufB := make([]byte, 19), make([]byte, 19)
	a.Read(bufA)
	b.Read(bufB)
	if !slices.Equal(bufA, bufB) {
		t.Fatal("same seed produced different bytes")
	}
	for i := 0; i < 1000; i++ {
		if l := a.Letter(); l < 'A' || l > 'Z' {
			t.Fatalf("letter %q outside A-Z", l)
		}
	}
}
