package utils

import "testing"

func TestRandomRangeBounds(t *testing.T) {
	src := NewRandomSource(42)
	for i := 0; i < 1000; i++ {
		v := RandomRange(src, 2.0, 4.0)
		if v < 2.0 || v >= 4.0 {
			t.Fatalf("RandomRange out of [2,4): %v", v)
		}
	}
}

func TestRandomSourceSeedIsDeterministic(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed should produce the same sequence")
		}
	}
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(0, 0.5, 0.99)

	want := []float64{0, 0.5, 0.99, 0, 0.5}
	for i, w := range want {
		if got := src.Float64(); got != w {
			t.Errorf("call %d: got %v, want %v", i, got, w)
		}
	}

	if got := RandomRange(NewSequenceSource(0.5), 2, 4); got != 3 {
		t.Errorf("RandomRange midpoint = %v, want 3", got)
	}
	if got := NewSequenceSource().Float64(); got != 0 {
		t.Errorf("empty sequence = %v, want 0", got)
	}
}
