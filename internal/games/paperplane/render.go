package paperplane

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// Visual characters for rendering
const (
	TargetChar     = '•'
	BullseyeChar   = '◎'
	TrajectoryChar = '·'
	DeskTopChar    = '▀'
	DeskFillChar   = '░'
	FrameFillChar  = '▒'
	StandChar      = '▀'
)

// planeArt reads as a dart pointing right.
var planeArt = []string{
	"◣▶",
	"◤ ",
}

const scorePanelWidth = 28

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.view.Ready() || g.flight == nil {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorGray)
		return
	}

	g.drawScene(dst)
	g.drawTrajectory(dst)
	g.drawPlane(dst)
	g.drawTitle(dst)
	g.drawScoreBoard(dst)
	g.drawControls(dst)

	if g.flashLeft > 0 && g.flash != "" {
		dst.DrawTextCentered(3, " "+g.flash+" ", core.ColorYellow)
	}
	if g.settingsOpen {
		g.drawSettings(dst)
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawText(1, 0, g.title, core.ColorBrightWhite)
	hint := "drag the plane onto the monitor"
	if g.mode == config.ModeFollow {
		hint = "pull from anywhere to throw"
	}
	dst.DrawText(len([]rune(g.title))+3, 0, hint, core.ColorGray)
}

// drawScene draws the office: wall frames, desk and the monitor with its target.
func (g *Game) drawScene(dst *core.Screen) {
	for _, f := range g.layout.Frames {
		r := g.view.CellRect(f)
		dst.DrawRect(r, FrameFillChar, core.ColorDarkGray)
		dst.DrawBox(r, core.BoxSolid, core.ColorAmber)
	}

	desk := g.view.CellRect(g.layout.Desk)
	dst.DrawRect(desk, DeskFillChar, core.ColorDarkGray)
	dst.DrawHLine(desk.X, desk.Y, desk.W, DeskTopChar, core.ColorAmber)

	mon := g.view.CellRect(g.layout.Monitor)
	dst.DrawRect(mon, ' ', core.ColorDefault)
	dst.DrawBox(mon, core.BoxRounded, core.ColorGray)
	standX := mon.X + mon.W/2 - 1
	dst.DrawHLine(standX, mon.Bottom(), 3, StandChar, core.ColorGray)

	g.drawTarget(dst)
}

// drawTarget outlines the scoring circle with a dashed ring.
func (g *Game) drawTarget(dst *core.Screen) {
	t := g.layout.Target
	c := t.Center()
	radius := t.Width() / 2
	if radius <= 0 {
		return
	}

	cellW := g.layout.Playfield.Width() / float64(g.view.Cols)
	cellH := g.layout.Playfield.Height() / float64(g.view.Rows)
	band := math.Max(cellW, cellH) / 2 / radius

	box := g.view.CellRect(t)
	for y := box.Y - 1; y <= box.Bottom(); y++ {
		for x := box.X - 1; x <= box.Right(); x++ {
			p := g.view.ToWorld(x, y)
			d := p.Sub(c).Len() / radius
			if math.Abs(d-1) <= band && (x+y)%2 == 0 {
				dst.SetColored(x, y, TargetChar, core.ColorBlue)
			}
		}
	}
	cx, cy := g.view.ToCell(c)
	dst.SetColored(cx, cy, BullseyeChar, core.ColorRed)
}

// drawTrajectory draws the dashed preview of the gesture in progress.
func (g *Game) drawTrajectory(dst *core.Screen) {
	points := g.controller.Preview(g.frame)
	half := core.V(g.layout.PlaneW/2, g.layout.PlaneH/2)
	for i, p := range points {
		if i%2 == 1 {
			continue
		}
		x, y := g.view.ToCell(p.Add(half))
		dst.SetColored(x, y, TrajectoryChar, core.ColorCyan)
	}
}

func (g *Game) drawPlane(dst *core.Screen) {
	pos := g.sprite.Position()
	r := g.view.CellRect(core.RectFromPos(pos, g.layout.PlaneW, g.layout.PlaneH))

	if r.H < len(planeArt) {
		cx, cy := g.view.ToCell(pos.Add(core.V(g.layout.PlaneW/2, g.layout.PlaneH/2)))
		dst.SetColored(cx, cy, '▶', core.ColorBrightWhite)
		return
	}

	top := r.Y + (r.H-len(planeArt))/2
	for i, line := range planeArt {
		w := len([]rune(line))
		left := r.X + (r.W-w)/2
		for j, ch := range []rune(line) {
			if ch != ' ' {
				dst.SetColored(left+j, top+i, ch, core.ColorBrightWhite)
			}
		}
	}
}

// drawScoreBoard draws the score panel in the top-right corner.
func (g *Game) drawScoreBoard(dst *core.Screen) {
	x := dst.Width() - scorePanelWidth - 1
	if x < 0 {
		x = 0
	}
	r := core.NewRect(x, 1, scorePanelWidth, 5)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.BoxRounded, core.ColorWhite)

	rows := []struct {
		icon  string
		label string
		value string
		color core.Color
	}{
		{"◎", "Current Score", fmt.Sprintf("%d", g.board.Score()), core.ColorBrightBlue},
		{"★", "Best Distance", fmt.Sprintf("%dm", g.board.Best()), core.ColorYellow},
		{"→", "Current Distance", fmt.Sprintf("%.1fm", g.board.Distance()), core.ColorGreen},
	}
	for i, row := range rows {
		y := r.Y + 1 + i
		dst.DrawText(x+2, y, row.icon, row.color)
		dst.DrawText(x+4, y, row.label, core.ColorWhite)
		dst.DrawText(r.Right()-2-len([]rune(row.value)), y, row.value, core.ColorBrightWhite)
	}
}

func (g *Game) drawControls(dst *core.Screen) {
	for _, b := range g.buttons {
		dst.DrawText(b.Rect.X, b.Rect.Y, b.Label, core.ColorBrightWhite)
	}
	dst.DrawText(1, dst.Height()-1, "r reset · s settings · tab throws · q quit", core.ColorGray)
}

// drawSettings draws the settings dialog over the scene.
func (g *Game) drawSettings(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Mode          %s", g.mode),
		fmt.Sprintf("Award         %d", g.flight.phys.Award),
		fmt.Sprintf("Decay         %.2f", g.cfg.Flight.Decay),
		fmt.Sprintf("Stop below    %.2f px/frame", g.cfg.Flight.StopThreshold),
		fmt.Sprintf("Busy policy   %s", g.cfg.Interaction.BusyPolicy),
		fmt.Sprintf("Target scale  %.2f", g.cfg.Target.Scale),
		"",
		"r reset   s/esc close   q quit",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.BoxSolid, core.ColorBrightWhite)
	title := " Settings "
	dst.DrawText(boxX+(boxW-len(title))/2, boxY, title, core.ColorBrightWhite)

	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+2+i, l, core.ColorWhite)
	}
}
