package rng

import "testing"

func TestTrialSeedsDeterministic(t *testing.T) {
	a := TrialSeeds(42, 10)
	b := TrialSeeds(42, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs across calls: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestTrialSeedsDifferentSeedsDiverge(t *testing.T) {
	a := TrialSeeds(1, 5)
	b := TrialSeeds(2, 5)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Fatal("expected different user seeds to produce different trial seeds")
	}
}

func TestMT19937StreamIsDeterministic(t *testing.T) {
	a := NewMT19937(7)
	b := NewMT19937(7)
	for i := 0; i < 1000; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("stream diverged at draw %d", i)
		}
	}
}

func TestNewTrialRandUsableAsRand(t *testing.T) {
	r := NewTrialRand(123)
	v := r.Float64()
	if v < 0 || v >= 1 {
		t.Fatalf("Float64() = %v, out of [0,1)", v)
	}
}
