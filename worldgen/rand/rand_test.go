package rand

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewRandom(1234567), NewRandom(1234567)
	for i := 0; i < 10000; i++ {
		if va, vb := a.Int32(), b.Int32(); va != vb {
			t.Fatalf("sequence diverged at draw %d: %d != %d", i, va, vb)
		}
	}
}

func TestSetSeedRestartsSequence(t *testing.T) {
	r := NewRandom(99)
	first := make([]int32, 64)
	for i := range first {
		first[i] = r.Int32()
	}
	r.SetSeed(99)
	for i := range first {
		if v := r.Int32(); v != first[i] {
			t.Fatalf("draw %d after reseed: got %d, want %d", i, v, first[i])
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := NewRandom(1), NewRandom(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Int32() == b.Int32() {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("seeds 1 and 2 agree on %d of 100 draws", same)
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestSignedRange(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Signed()
		if v < -1 || v >= 1 {
			t.Fatalf("Signed out of [-1,1): %v", v)
		}
	}
}

func TestInt31nBounds(t *testing.T) {
	r := NewRandom(42)
	seen := make(map[int32]bool)
	for i := 0; i < 10000; i++ {
		v := r.Int31n(16)
		if v < 0 || v >= 16 {
			t.Fatalf("Int31n(16) out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 16 {
		t.Fatalf("Int31n(16) produced %d distinct values over 10000 draws", len(seen))
	}
}

func TestRangeInclusive(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 1000; i++ {
		v := r.Range(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Range(3,5) out of range: %d", v)
		}
	}
}

func TestSkipAlignsStreams(t *testing.T) {
	a, b := NewRandom(5), NewRandom(5)
	for i := 0; i < 13; i++ {
		a.Int32()
	}
	b.Skip(13)
	if va, vb := a.Int32(), b.Int32(); va != vb {
		t.Fatalf("Skip(13) did not align streams: %d != %d", va, vb)
	}
}
