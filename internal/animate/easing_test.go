package animate

import (
	"math"
	"testing"
)

func TestEasingEndpointsAndMonotonic(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":      Linear,
		"ease":        Ease,
		"ease-in-out": EaseInOut,
	} {
		if got := e(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}

func TestEaseInOutIsSymmetric(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a, b := EaseInOut(x), 1-EaseInOut(1-x)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("EaseInOut(%v) = %v, mirror %v", x, a, b)
		}
	}
}

func TestParseEasing(t *testing.T) {
	for _, name := range []string{"", "ease-in-out", "Ease", "linear"} {
		if _, err := ParseEasing(name); err != nil {
			t.Errorf("ParseEasing(%q): %v", name, err)
		}
	}
	if _, err := ParseEasing("bounce"); err == nil {
		t.Error("ParseEasing(bounce) returned no error")
	}
}
