package render

import (
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/torus"
)

// Quad glyphs are listed in torus.Position.Quad order: top-left, top-right, bottom-left, bottom-right
type quadGlyph [4]rune

var playerGlyphs = map[torus.Direction]quadGlyph{
	torus.Up:    {'/', '\\', '[', ']'},
	torus.Down:  {'[', ']', '\\', '/'},
	torus.Left:  {'<', '[', '<', '['},
	torus.Right: {']', '>', ']', '>'},
}

var factoryFrames = [2]quadGlyph{
	{'╔', '╗', '╚', '╝'},
	{'┏', '┓', '┗', '┛'},
}

var (
	ratFrames  = [2]rune{'r', 'R'}
	bratFrames = [2]rune{'b', 'B'}
)

var explosionGlyphs = map[entity.State]rune{
	entity.Exploding1: '*',
	entity.Exploding2: '+',
	entity.Exploding3: '.',
}

// playerQuad picks the player's glyphs from its facing; diagonals use their vertical component
func playerQuad(p *entity.Player) quadGlyph {
	dir := p.Facing()
	switch {
	case dir&torus.Up != 0:
		dir = torus.Up
	case dir&torus.Down != 0:
		dir = torus.Down
	}
	if g, ok := playerGlyphs[dir]; ok {
		return g
	}
	return playerGlyphs[torus.Down]
}

func bulletGlyph(dir torus.Direction) rune {
	switch dir {
	case torus.Up, torus.Down:
		return '|'
	case torus.Left, torus.Right:
		return '-'
	case torus.UpLeft, torus.DownRight:
		return '\\'
	case torus.UpRight, torus.DownLeft:
		return '/'
	default:
		return '.'
	}
}

// glyphsFor returns the runes painted over e's footprint
func glyphsFor(e entity.Entity) quadGlyph {
	b := e.Common()
	if ch, ok := explosionGlyphs[b.State]; ok {
		return quadGlyph{ch, ch, ch, ch}
	}

	switch v := e.(type) {
	case *entity.Player:
		return playerQuad(v)
	case *entity.Factory:
		return factoryFrames[b.Cycle&1]
	case *entity.Rat:
		ch := ratFrames[b.Cycle&1]
		return quadGlyph{ch}
	case *entity.Brat:
		ch := bratFrames[b.Cycle&1]
		return quadGlyph{ch}
	case *entity.Bullet:
		return quadGlyph{bulletGlyph(b.Dir)}
	default:
		return quadGlyph{'?'}
	}
}

// colorFor returns the foreground for e; explosions cool from flame to ember
func colorFor(e entity.Entity) RGB {
	state := e.Common().State
	if state.Exploding() {
		stage := float64(state-entity.Exploding1) / 2
		return RGBFlame.Lab(RGBEmber, stage)
	}
	switch e.Kind() {
	case entity.KindPlayer:
		return RGBPlayer
	case entity.KindRat:
		return RGBRat
	case entity.KindBrat:
		return RGBBrat
	case entity.KindFactory:
		return RGBFactory
	default:
		return RGBBullet
	}
}
