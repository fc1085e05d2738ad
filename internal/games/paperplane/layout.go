package paperplane

import (
	"math"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// Layout is the measured office scene in playfield pixels.
type Layout struct {
	Playfield core.RectF
	Monitor   core.RectF // Outer bezel
	Screen    core.RectF // Monitor glass inside the bezel
	Target    core.RectF // Bounding box of the scoring circle
	Desk      core.RectF
	Frames    []core.RectF // Picture frames on the wall
	Launch    core.Vec2
	PlaneW    float64
	PlaneH    float64
}

// NewLayout measures the scene from the configuration.
func NewLayout(cfg config.PaperPlaneConfig) Layout {
	w, h := cfg.World.Width, cfg.World.Height
	t := cfg.Target

	monitor := core.RectFromPos(
		core.V(w-t.RightOffset-t.MonitorWidth, h-t.BottomOffset-t.MonitorHeight),
		t.MonitorWidth, t.MonitorHeight,
	)
	screen := monitor.Inset(t.Padding)

	d := t.Size * t.Scale
	c := screen.Center()
	target := core.RectF{Left: c.X - d/2, Top: c.Y - d/2, Right: c.X + d/2, Bottom: c.Y + d/2}

	return Layout{
		Playfield: core.RectF{Right: w, Bottom: h},
		Monitor:   monitor,
		Screen:    screen,
		Target:    target,
		Desk:      core.RectF{Left: 0, Top: h - t.BottomOffset, Right: w, Bottom: h},
		Frames: []core.RectF{
			{Left: w * 0.12, Top: h * 0.10, Right: w * 0.24, Bottom: h * 0.30},
			{Left: w * 0.30, Top: h * 0.08, Right: w * 0.38, Bottom: h * 0.24},
		},
		Launch: core.V(cfg.Launch.X, cfg.Launch.Y),
		PlaneW: cfg.Plane.Width,
		PlaneH: cfg.Plane.Height,
	}
}

// Environment returns the geometry the simulator needs.
func (l Layout) Environment() Environment {
	return Environment{
		Playfield: l.Playfield,
		Target:    l.Target,
		Launch:    l.Launch,
		PlaneW:    l.PlaneW,
		PlaneH:    l.PlaneH,
	}
}

// Viewport projects the playfield onto a block of terminal cells.
type Viewport struct {
	Origin core.Vec2 // Top-left cell of the projection
	Cols   int
	Rows   int
	world  core.RectF
}

// NewViewport fits the world into cols x rows cells starting at (x, y).
func NewViewport(world core.RectF, x, y, cols, rows int) Viewport {
	return Viewport{
		Origin: core.V(float64(x), float64(y)),
		Cols:   cols,
		Rows:   rows,
		world:  world,
	}
}

// Ready reports whether the viewport has any cells to draw into.
func (v Viewport) Ready() bool {
	return v.Cols > 0 && v.Rows > 0 && !v.world.Empty()
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Cols) / v.world.Width(), float64(v.Rows) / v.world.Height()
}

// ToCell returns the cell covering a playfield point.
func (v Viewport) ToCell(p core.Vec2) (x, y int) {
	sx, sy := v.scale()
	x = int(math.Floor(v.Origin.X + (p.X-v.world.Left)*sx))
	y = int(math.Floor(v.Origin.Y + (p.Y-v.world.Top)*sy))
	return x, y
}

// ToWorld returns the playfield point at the center of a cell.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	sx, sy := v.scale()
	return core.V(
		v.world.Left+(float64(x)-v.Origin.X+0.5)/sx,
		v.world.Top+(float64(y)-v.Origin.Y+0.5)/sy,
	)
}

// CellRect returns the cells covered by a playfield rectangle.
// Non-empty rectangles always cover at least one cell.
func (v Viewport) CellRect(r core.RectF) core.Rect {
	x0, y0 := v.ToCell(r.TopLeft())
	x1, y1 := v.ToCell(core.V(r.Right, r.Bottom))
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// Button is a clickable control in cell coordinates.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

// controlButtons lays out the Reset and Settings buttons against the
// bottom-right corner of a cols x rows screen.
func controlButtons(cols, rows int) []Button {
	labels := []struct {
		text   string
		action core.Action
	}{
		{"[⟲ Reset]", core.ActionReset},
		{"[⚙ Settings]", core.ActionSettings},
	}

	y := rows - 2
	x := cols - 2
	buttons := make([]Button, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		w := len([]rune(labels[i].text))
		x -= w
		buttons[i] = Button{
			Label:  labels[i].text,
			Action: labels[i].action,
			Rect:   core.NewRect(x, y, w, 1),
		}
		x--
	}
	return buttons
}

// buttonAt returns the action of the button under (x, y), if any.
func buttonAt(buttons []Button, x, y int) (core.Action, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	return core.ActionNone, false
}
