package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBBackground = RGB{8, 8, 16}
	RGBWall       = RGB{40, 90, 160}
	RGBPlayer     = RGB{255, 230, 80}
	RGBRat        = RGB{200, 200, 200}
	RGBBrat       = RGB{140, 220, 120}
	RGBFactory    = RGB{220, 80, 220}
	RGBBullet     = RGB{255, 255, 255}
	RGBFlame      = RGB{255, 160, 40}
	RGBEmber      = RGB{120, 20, 0}
	RGBBoom       = RGB{255, 255, 220}
	RGBStatus     = RGB{0, 220, 220}
	RGBOverlay    = RGB{20, 20, 40}
	RGBWarning    = RGB{255, 70, 70}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (dst RGB) Max(src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Lab interpolates towards src in CIE-L*a*b* space, which keeps fades
// perceptually even where a linear blend goes muddy
func (dst RGB) Lab(src RGB, t float64) RGB {
	if t <= 0 {
		return dst
	}
	if t >= 1 {
		return src
	}
	c := dst.toColorful().BlendLab(src.toColorful(), t).Clamped()
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Tcell converts to a true-color tcell value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
