package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/engine"
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/status"
)

// lowHealth switches the health readout to the warning color
const lowHealth = constants.MaxHealth / 4

// TerminalRenderer draws session snapshots onto a tcell screen.
// The bottom row is the status bar; everything above is a torus viewport centered on the player.
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the drawable area after a terminal resize event
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Draw renders one frame. reg feeds the diagnostics overlay and may be nil.
func (r *TerminalRenderer) Draw(snap engine.Snapshot, reg *status.Registry) {
	r.screen.Clear()
	if r.width <= 0 || r.height <= 1 {
		r.screen.Show()
		return
	}

	bg := RGBBackground
	if snap.SuperBoom > 0 {
		bg = bg.Lab(RGBBoom, float64(snap.SuperBoom)/float64(constants.SuperBoomFrames))
	}

	canvas := Compose(snap.Maze, snap.Entities)
	r.drawViewport(canvas, snap.Player, bg)
	r.drawStatusBar(snap)

	switch snap.Phase {
	case engine.PhasePaused:
		r.drawBanner("PAUSED  p: resume  q: quit")
	case engine.PhaseFinished:
		r.drawBanner(fmt.Sprintf("GAME OVER  score %d  r: restart  q: quit", snap.Score))
	}

	if snap.Diagnostics && reg != nil {
		r.drawDiagnostics(reg.Lines())
	}

	r.screen.Show()
}

// viewHeight excludes the status bar
func (r *TerminalRenderer) viewHeight() int { return r.height - 1 }

// drawViewport maps every screen cell to a wrapped maze position so the
// player's quad sits at the center and the torus tiles past the edges
func (r *TerminalRenderer) drawViewport(canvas *Canvas, player entity.Player, bg RGB) {
	viewH := r.viewHeight()
	top := player.Pos.Row + 1 - viewH/2
	left := player.Pos.Col + 1 - r.width/2
	base := tcell.StyleDefault.Background(bg.Tcell())

	for y := 0; y < viewH; y++ {
		for x := 0; x < r.width; x++ {
			cell := canvas.At(top+y, left+x)
			style := base
			if cell.Wall || cell.Entity {
				style = style.Foreground(cell.Color.Tcell())
			}
			if cell.Entity && cell.Kind == entity.KindPlayer {
				style = style.Bold(true)
			}
			r.screen.SetContent(x, y, cell.Ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot) {
	y := r.height - 1
	style := tcell.StyleDefault.Background(RGBBlack.Tcell()).Foreground(RGBStatus.Tcell())
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	x := r.drawText(0, y, fmt.Sprintf(" SCORE %d ", snap.Score), style)

	healthStyle := style
	if snap.Health <= lowHealth {
		healthStyle = style.Foreground(RGBWarning.Tcell())
	}
	x = r.drawText(x, y, fmt.Sprintf(" HEALTH %d ", snap.Health), healthStyle)
	x = r.drawText(x, y, fmt.Sprintf(" LIVES %d ", snap.Lives), style)
	r.drawText(x, y, fmt.Sprintf(" FACTORIES %d  RATS %d  BRATS %d ",
		snap.Live[entity.KindFactory], snap.Live[entity.KindRat], snap.Live[entity.KindBrat]), style)

	phase := snap.Phase.String()
	r.drawText(r.width-len(phase)-1, y, phase, style.Bold(true))
}

// drawBanner centers msg in the viewport
func (r *TerminalRenderer) drawBanner(msg string) {
	msg = " " + msg + " "
	x := (r.width - len([]rune(msg))) / 2
	y := r.viewHeight() / 2
	style := tcell.StyleDefault.Background(RGBOverlay.Tcell()).Foreground(RGBPlayer.Tcell()).Bold(true)
	r.drawText(max(x, 0), y, msg, style)
}

func (r *TerminalRenderer) drawDiagnostics(lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	style := tcell.StyleDefault.Background(RGBOverlay.Tcell()).Foreground(RGBStatus.Tcell())
	for i, l := range lines {
		if i >= r.viewHeight() {
			break
		}
		for x := 0; x < width+2 && x < r.width; x++ {
			r.screen.SetContent(x, i, ' ', nil, style)
		}
		r.drawText(1, i, l, style)
	}
}

// drawText writes s from (x, y), clipping at the right edge, and returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
