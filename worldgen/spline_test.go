package worldgen

import "testing"

func TestSplineClampsEndpoints(t *testing.T) {
	s := Spline{{-1, 30}, {1, 100}}
	if got := s.At(-5); got != 30 {
		t.Fatalf("At(-5) = %v, want 30", got)
	}
	if got := s.At(5); got != 100 {
		t.Fatalf("At(5) = %v, want 100", got)
	}
}

func TestSplineMidpoint(t *testing.T) {
	s := Spline{{-1, 30}, {1, 100}}
	// Smoothstep at u=0.5 is exactly 0.5, so the midpoint is the average.
	if got := s.At(0); got != 65 {
		t.Fatalf("At(0) = %v, want 65", got)
	}
}

func TestSplineEndpointsExact(t *testing.T) {
	s := Spline{{0, 10}, {2, 20}, {5, -4}}
	for _, p := range s {
		if got := s.At(p.X); got != p.Y {
			t.Fatalf("At(%v) = %v, want %v", p.X, got, p.Y)
		}
	}
}

func TestSplineMonotoneSegment(t *testing.T) {
	s := Spline{{0, 0}, {1, 10}}
	prev := -1.0
	for u := 0.0; u <= 1.0; u += 0.05 {
		v := s.At(u)
		if v < prev {
			t.Fatalf("spline not monotone over monotone segment at u=%v", u)
		}
		prev = v
	}
}

func TestSplineDegenerate(t *testing.T) {
	if got := (Spline{}).At(3); got != 0 {
		t.Fatalf("empty spline At = %v, want 0", got)
	}
	if got := (Spline{{2, 7}}).At(-10); got != 7 {
		t.Fatalf("single-point spline At = %v, want 7", got)
	}
}
