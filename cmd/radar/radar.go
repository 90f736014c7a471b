package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"waveshooter/game"
)

var (
	styleDefault = tcell.StyleDefault
	styleRing    = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEffect  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDamage  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

var itemRunes = [...]rune{
	game.ItemGrow:   '+',
	game.ItemShrink: '-',
	game.ItemSpeed:  '>',
	game.ItemHeal:   'H',
}

// radar maps the ground plane around the player onto terminal cells with the heading
// pointing up. Cells are roughly twice as tall as wide, so columns get double the scale.
type radar struct {
	cx, cy  int
	scale   float64 // rows per world unit
	player  game.Vec2
	forward game.Vec2
}

func newRadar(width, height int, reach float64, player, forward game.Vec2) radar {
	rows := float64(height-3) / 2
	cols := float64(width-2) / 4
	scale := math.Min(rows, cols) / reach
	if scale <= 0 {
		scale = 0.1
	}
	if _, ok := forward.Normalized(); !ok {
		forward = game.Vec2{Z: -1}
	}
	return radar{cx: width / 2, cy: 1 + (height-2)/2, scale: scale, player: player, forward: forward}
}

// project returns the cell for world position p
func (r radar) project(p game.Vec2) (int, int) {
	d := p.Sub(r.player)
	ahead := d.Dot(r.forward)
	across := d.Dot(r.forward.Right())
	col := r.cx + int(math.Round(across*r.scale*2))
	row := r.cy - int(math.Round(ahead*r.scale))
	return col, row
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}

func plot(s tcell.Screen, x, y int, ch rune, style tcell.Style) {
	w, h := s.Size()
	if x < 0 || y < 1 || x >= w || y >= h-1 {
		return
	}
	s.SetContent(x, y, ch, nil, style)
}

func drawWorld(s tcell.Screen, g *game.Game, damageFlash bool) {
	s.Clear()
	w, h := s.Size()
	world := g.World()
	cfg := g.Config()
	r := newRadar(w, h, cfg.MaxObjectDistance, world.Player, world.Forward)

	// range ring
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		p := world.Player.Add(game.Vec2{X: math.Cos(a), Z: math.Sin(a)}.Scale(cfg.MaxObjectDistance))
		x, y := r.project(p)
		plot(s, x, y, '·', styleRing)
	}

	for _, fx := range world.Effects.Live() {
		x, y := r.project(fx.Pos)
		plot(s, x, y, '*', styleEffect)
	}
	for _, it := range world.Items.Live() {
		x, y := r.project(it.Pos)
		plot(s, x, y, itemRunes[it.Type], stylePlayer)
	}
	for _, e := range world.Enemies.Live() {
		x, y := r.project(e.Pos)
		plot(s, x, y, '@', styleEnemy)
	}
	for _, b := range world.Bullets.Live() {
		x, y := r.project(b.Pos)
		plot(s, x, y, '\'', styleBullet)
	}
	for _, l := range world.Labels.Live() {
		x, y := r.project(l.Pos)
		drawString(s, x+1, y-1, l.Text(), styleEffect)
	}
	plot(s, r.cx, r.cy, '^', stylePlayer)

	ui := g.UI()
	hud := styleHUD
	if damageFlash {
		hud = styleDamage
	}
	drawString(s, 0, 0, fmt.Sprintf(" SCORE %-6d HP %-3d TIME %-4d WAVE %-3d SHOT %d x%.1f ",
		ui.Score, ui.HP, ui.TimeLeft, ui.Wave, len(ui.Pattern), ui.SpeedMultiplier), hud)
	drawString(s, 0, h-1, " w/s/a/d move  q/e turn  enter start  esc quit ", styleDefault)

	switch ui.Status {
	case game.StatusStart:
		drawBoard(s, g, "WAVE SHOOTER  press enter", w, h)
	case game.StatusGameOver:
		drawBoard(s, g, fmt.Sprintf("GAME OVER  %s scored %d  press enter", g.PlayerName(), ui.Score), w, h)
	}
	s.Show()
}

func drawBoard(s tcell.Screen, g *game.Game, title string, w, h int) {
	board := g.Leaderboard()
	x := max(0, w/2-20)
	y := max(1, h/2-6)
	drawString(s, x, y, title, styleHUD)
	rank := board.Rank(g.LastEntry())
	for i, e := range board {
		style := styleHUD
		if i+1 == rank {
			style = styleBullet
		}
		drawString(s, x, y+2+i, fmt.Sprintf("%2d. %-12s %6d", i+1, e.Name, e.Score), style)
	}
}
