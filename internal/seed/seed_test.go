package seed

import (
	"math"
	"testing"
)

func TestVaryStaysWithinBounds(t *testing.T) {
	const base = 0.50
	for i := 0; i < 1000; i++ {
		v := vary(base)
		if v < base*0.8-0.01 || v > base*1.2+0.01 {
			t.Fatalf("vary(%v) = %v, outside ±20%%", base, v)
		}
		// Two decimals at most.
		if math.Abs(v*100-math.Round(v*100)) > 1e-9 {
			t.Fatalf("vary(%v) = %v, not rounded to two decimals", base, v)
		}
	}
}

func TestVaryZero(t *testing.T) {
	if v := vary(0); v != 0 {
		t.Errorf("vary(0) = %v, want 0", v)
	}
}

func TestPatternHelpers(t *testing.T) {
	f := flat(0.1)
	for h, v := range f {
		if v != 0.1 {
			t.Fatalf("flat: hour %d = %v, want 0.1", h, v)
		}
	}

	p := sparse(map[int]float64{2: 0.2}, span(5, 7, 0.3))
	want := [24]float64{}
	want[2] = 0.2
	want[5], want[6], want[7] = 0.3, 0.3, 0.3
	if p != want {
		t.Errorf("sparse/span pattern = %v, want %v", p, want)
	}
}

func TestDemoDataShape(t *testing.T) {
	if len(demoUsers) != 2 {
		t.Fatalf("demo users = %d, want 2", len(demoUsers))
	}
	devices := 0
	rooms := map[string]struct{}{}
	for user, ds := range demoDevices {
		for _, d := range ds {
			devices++
			rooms[user+"/"+d.room] = struct{}{}
		}
	}
	if devices != 9 {
		t.Errorf("demo devices = %d, want 9", devices)
	}
	if len(rooms) != 5 {
		t.Errorf("demo rooms = %d, want 5", len(rooms))
	}
}
