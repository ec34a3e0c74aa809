package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Tint is a per-channel multiplier applied when drawing, 1 leaves a channel unchanged
type Tint struct {
	R, G, B, A float64
}

// White draws assets unmodified
var White = Tint{1, 1, 1, 1}

// Gray returns a uniform tint with the given brightness and alpha
func Gray(v, alpha float64) Tint {
	return Tint{v, v, v, alpha}
}

// Apply tints a base color and blends it over dst by the tint's alpha
func (t Tint) Apply(base, dst RGB) RGB {
	tinted := RGB{
		R: uint8(float64(base.R) * clamp01(t.R)),
		G: uint8(float64(base.G) * clamp01(t.G)),
		B: uint8(float64(base.B) * clamp01(t.B)),
	}
	return dst.Blend(tinted, t.A)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
