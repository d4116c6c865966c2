package sprite

import (
	"image/color"
	"testing"
)

func TestLightenZeroIsIdentity(t *testing.T) {
	colors := []color.NRGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 164, G: 132, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 60},
	}
	for _, c := range colors {
		if got := Lighten(c, 0); got != c {
			t.Errorf("Lighten(%v, 0): got %v, want unchanged", c, got)
		}
	}
}

func TestLightenFullIsWhite(t *testing.T) {
	c := color.NRGBA{R: 12, G: 200, B: 99, A: 120}
	got := Lighten(c, 1)
	want := color.NRGBA{R: 255, G: 255, B: 255, A: 120}
	if got != want {
		t.Errorf("Lighten(%v, 1): got %v, want %v", c, got, want)
	}
}

func TestLightenBlend(t *testing.T) {
	// 100 + (255-100)*0.2 = 131, truncated like the channel math.
	c := color.NRGBA{R: 100, G: 0, B: 255, A: 255}
	got := Lighten(c, 0.2)
	want := color.NRGBA{R: 131, G: 51, B: 255, A: 255}
	if got != want {
		t.Errorf("Lighten(%v, 0.2): got %v, want %v", c, got, want)
	}
}
