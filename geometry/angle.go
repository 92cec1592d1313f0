package geometry

import (
	"fmt"
	"math"
)

// Angle is a whole number of degrees normalised into [0, 360).
// The zero value is 0°.
type Angle struct {
	deg int
}

// FromDegrees returns deg normalised into [0, 360).
func FromDegrees(deg int) Angle {
	return Angle{deg: normalize(deg)}
}

// FromRadians converts rad to the nearest whole degree, normalised.
func FromRadians(rad float64) Angle {
	return FromDegrees(ToDegrees(rad))
}

// Degrees returns the angle in whole degrees, always in [0, 360).
func (a Angle) Degrees() int { return a.deg }

// Radians returns the angle in radians, in [0, 2π).
func (a Angle) Radians() float64 { return ToRadians(float64(a.deg)) }

// Add returns a + o, normalised.
func (a Angle) Add(o Angle) Angle { return FromDegrees(a.deg + o.deg) }

// Sub returns a - o, normalised.
func (a Angle) Sub(o Angle) Angle { return FromDegrees(a.deg - o.deg) }

// AddDegrees returns a rotated by deg degrees (negative turns back), normalised.
func (a Angle) AddDegrees(deg int) Angle { return FromDegrees(a.deg + deg) }

// FlipY mirrors the angle against the y axis: 30° becomes 150°.
func (a Angle) FlipY() Angle {
	return FromDegrees(180 - a.deg)
}

// String formats the angle as e.g. "45°".
func (a Angle) String() string {
	return fmt.Sprintf("%d°", a.deg)
}

func normalize(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to the nearest whole degree (not normalised).
func ToDegrees(rad float64) int {
	return int(math.Round(rad * 180 / math.Pi))
}
