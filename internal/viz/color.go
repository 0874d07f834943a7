package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

// MomentumColor maps the magnitude of an entity's momentum to a colour:
// red rises twice as fast as green and blue starts at 0.15, so slow
// planets are dark blue and fast ones saturate towards white.
func MomentumColor(e *physics.Entity) colorful.Color {
	p := vec.Length(e.Momentum())
	return colorful.Color{
		R: p * 10,
		G: p * 5,
		B: p*2 + 0.15,
	}.Clamped()
}

// MomentumHex is MomentumColor as a "#rrggbb" string.
func MomentumHex(e *physics.Entity) string {
	c := MomentumColor(e)
	if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) {
		return "#ffffff"
	}
	return c.Hex()
}

// GradientText renders text with a foreground blended from start to end
// in Lab space.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return text
	}

	out := make([]byte, 0, len(text)*20)
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
		out = append(out, lipgloss.NewStyle().Foreground(col).Render(string(r))...)
	}
	return string(out)
}
