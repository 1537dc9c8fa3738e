package smash

import (
	"fmt"

	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

// Visual characters for rendering
const (
	HandOpenChar   = '▒'
	HandSmashChar  = '█'
	AsteroidChar   = '▓'
	AsteroidCore   = '@'
	hudRows        = 1
	endBoxMinWidth = 26
)

// Viewport maps the play-field onto the screen area below the HUD.
type Viewport struct {
	field Field
	x, y  int // Top-left cell of the play area
	w, h  int // Play area size in cells
}

// NewViewport fits the field into a screen of the given size, leaving the
// top row for the HUD.
func NewViewport(field Field, screenW, screenH int) Viewport {
	return Viewport{
		field: field,
		x:     0,
		y:     hudRows,
		w:     core.Max(1, screenW),
		h:     core.Max(1, screenH-hudRows),
	}
}

// Area returns the play area in screen cells.
func (v Viewport) Area() core.Rect {
	return core.NewRect(v.x, v.y, v.w, v.h)
}

// ToCell converts a play-field point to a screen cell.
func (v Viewport) ToCell(p core.Point) (int, int) {
	return v.x + floorDiv(p.X*v.w, v.field.W), v.y + floorDiv(p.Y*v.h, v.field.H)
}

// ToField converts a screen cell to the play-field point at the cell's
// center, clamped to the field.
func (v Viewport) ToField(cx, cy int) core.Point {
	px := ((cx-v.x)*2 + 1) * v.field.W / (2 * v.w)
	py := ((cy-v.y)*2 + 1) * v.field.H / (2 * v.h)
	return core.Point{
		X: core.Clamp(px, 0, v.field.W-1),
		Y: core.Clamp(py, 0, v.field.H-1),
	}
}

// RectToCells converts a play-field rectangle to the cells it covers.
// Every visible rectangle covers at least one cell.
func (v Viewport) RectToCells(r core.Rect) core.Rect {
	x1, y1 := v.ToCell(core.Point{X: r.X, Y: r.Y})
	x2, y2 := v.ToCell(core.Point{X: r.Right(), Y: r.Bottom()})
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	return core.NewRect(x1, y1, x2-x1, y2-y1)
}

// floorDiv divides rounding toward negative infinity, so sprites that are
// partly off the field map to cells left of or above the area.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DrawFrame renders a frame into the screen buffer.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	vp := NewViewport(f.Field, dst.Width(), dst.Height())

	drawHUD(dst, f)

	for _, sp := range f.Obstacles {
		drawSprite(dst, vp, sp)
	}
	drawSprite(dst, vp, f.Actor)

	if f.Phase == PhaseEnded {
		drawEndBox(dst, f)
	}
}

func drawHUD(dst *core.Screen, f Frame) {
	left := fmt.Sprintf(" SCORE %d", f.Score)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	timeColor := core.ColorGreen
	if f.Phase == PhaseEnded {
		timeColor = core.ColorRed
	}
	timeText := "TIME " + f.Remaining
	dst.DrawTextCentered(0, timeText, timeColor)

	right := fmt.Sprintf("BEST %d  WAVE %d ", f.HighScore, f.SpawnTarget)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorYellow)
}

// drawSprite draws one entity. Anything partly outside the play area is
// clipped to it.
func drawSprite(dst *core.Screen, vp Viewport, sp Sprite) {
	cells := vp.RectToCells(sp.Bounds)
	area := vp.Area()

	var fill rune
	var color core.Color
	switch sp.Kind {
	case KindActor:
		fill, color = HandOpenChar, core.ColorCyan
		if sp.Smashing {
			fill, color = HandSmashChar, core.ColorBrightYellow
		}
	case KindObstacle:
		fill, color = AsteroidChar, core.ColorOrange
	default:
		return
	}

	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if area.Contains(x, y) {
				dst.SetColor(x, y, fill, color)
			}
		}
	}

	if sp.Kind == KindObstacle {
		c := cells.Center()
		if area.Contains(c.X, c.Y) {
			dst.SetColor(c.X, c.Y, AsteroidCore, core.ColorBrightRed)
		}
	}
}

// drawEndBox draws the final score box in the center of the screen.
func drawEndBox(dst *core.Screen, f Frame) {
	lines := []string{
		"TIME UP",
		"",
		fmt.Sprintf("Score: %d   Best: %d", f.Score, f.HighScore),
	}
	if f.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "", "R restart   Q quit")

	boxW := endBoxMinWidth
	for _, l := range lines {
		boxW = core.Max(boxW, len(l)+4)
	}
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorBrightWhite
		switch {
		case i == 0:
			color = core.ColorRed
		case l == "NEW HIGH SCORE!":
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(box.X+(boxW-len(l))/2, box.Y+1+i, l, color)
	}
}
