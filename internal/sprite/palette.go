package sprite

import "image/color"

// Lighten blends each RGB channel of c toward white by amount in
// [0, 1]. Alpha is preserved. amount 0 returns c unchanged; amount 1
// returns white RGB with the original alpha.
func Lighten(c color.NRGBA, amount float64) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(float64(c.R) + (255-float64(c.R))*amount),
		G: clampChannel(float64(c.G) + (255-float64(c.G))*amount),
		B: clampChannel(float64(c.B) + (255-float64(c.B))*amount),
		A: c.A,
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
