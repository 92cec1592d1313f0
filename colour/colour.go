// Package colour provides small colour blending helpers on image/color.
package colour

import "image/color"

// Mix returns the per-channel mean of a and b in non-premultiplied 8-bit
// space, alpha included.
func Mix(a, b color.Color) color.NRGBA {
	ca := toNRGBA(a)
	cb := toNRGBA(b)

	return color.NRGBA{
		R: mean(ca.R, cb.R),
		G: mean(ca.G, cb.G),
		B: mean(ca.B, cb.B),
		A: mean(ca.A, cb.A),
	}
}

// Invert flips the RGB channels of c and keeps its alpha.
// Inverting a mid-tone yields another mid-tone, which reads poorly against
// the original; when every inverted channel falls in (110, 150) the result
// is pushed to a light (200) or dark (60) grey instead.
func Invert(c color.Color) color.NRGBA {
	n := toNRGBA(c)
	inv := color.NRGBA{R: ^n.R, G: ^n.G, B: ^n.B, A: n.A}

	if midTone(inv.R) && midTone(inv.G) && midTone(inv.B) {
		avg := (int(inv.R) + int(inv.G) + int(inv.B)) / 3
		grey := uint8(60)
		if avg > 128 {
			grey = 200
		}
		inv.R, inv.G, inv.B = grey, grey, grey
	}

	return inv
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func mean(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

func midTone(v uint8) bool {
	return v > 110 && v < 150
}
