package host

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"waveshooter/game"
	"waveshooter/leaderboard"
)

const lineHeight = 16

var (
	colorHUD      = color.RGBA{230, 230, 230, 255}
	colorChain    = color.RGBA{255, 255, 0, 255}
	colorChainMax = color.RGBA{255, 68, 0, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 170}
	colorDamage   = color.NRGBA{255, 0, 0, 90}
	colorHighRow  = color.RGBA{255, 220, 90, 255}
)

// drawText is a small wrapper over the classic text.Draw signature
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, col)
}

// HUD draws the score panel, chain labels and the start/game-over overlays
type HUD struct {
	camera *Camera

	damageFlash float64
	lastDamage  int
	fps         float64
}

// NewHUD creates a HUD
func NewHUD(camera *Camera) *HUD {
	return &HUD{camera: camera}
}

// Update tracks the damage flash and the FPS readout
func (h *HUD) Update(ui game.UIState, dt, fps float64) {
	if ui.DamageTaken != h.lastDamage {
		if ui.DamageTaken > h.lastDamage {
			h.damageFlash = 0.25
		}
		h.lastDamage = ui.DamageTaken
	}
	h.damageFlash = max(0, h.damageFlash-dt)
	h.fps = fps
}

// Draw renders the HUD for the current state
func (h *HUD) Draw(screen *ebiten.Image, g *game.Game) {
	ui := g.UI()
	switch ui.Status {
	case game.StatusStart:
		h.drawStart(screen, g)
		return
	case game.StatusGameOver:
		h.drawGameOver(screen, g)
		return
	}

	if h.damageFlash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(h.camera.Width), float32(h.camera.Height), colorDamage, false)
	}

	h.drawChainLabels(screen, g.World())

	lines := []string{
		fmt.Sprintf("SCORE %d", ui.Score),
		fmt.Sprintf("HP    %s", strings.Repeat("#", ui.HP)+strings.Repeat(".", max(0, g.Config().InitialHP-ui.HP))),
		fmt.Sprintf("TIME  %d", ui.TimeLeft),
		fmt.Sprintf("WAVE  %d", ui.Wave),
		fmt.Sprintf("SHOT  %d lanes x%.1f", len(ui.Pattern), ui.SpeedMultiplier),
	}
	if chain := g.World().Chain(); chain > 1 {
		label := game.ChainLabel{Chain: chain, Max: chain >= g.Config().ChainMax}
		lines = append(lines, fmt.Sprintf("CHAIN %s", label.Text()))
	}
	for i, l := range lines {
		drawText(screen, l, 10, 20+i*lineHeight, colorHUD)
	}
	drawText(screen, fmt.Sprintf("FPS %.0f", h.fps), int(h.camera.Width)-70, 20, colorHUD)
}

func (h *HUD) drawChainLabels(screen *ebiten.Image, w *game.World) {
	for _, l := range w.Labels.Live() {
		sx, sy := h.camera.WorldToScreen(l.Pos)
		if !h.camera.Visible(sx, sy, 0) {
			continue
		}
		clr := colorChain
		if l.Max {
			clr = colorChainMax
		}
		drawText(screen, l.Text(), int(sx)-8, int(sy)-12, clr)
	}
}

func (h *HUD) drawStart(screen *ebiten.Image, g *game.Game) {
	h.dim(screen)
	x, y := int(h.camera.Width/2)-120, int(h.camera.Height/2)-140
	drawText(screen, "WAVE SHOOTER", x, y, colorHUD)
	drawText(screen, "WASD move   Q/E or arrows turn", x, y+2*lineHeight, colorHUD)
	drawText(screen, "Press ENTER to start", x, y+3*lineHeight, colorHUD)
	h.drawBoard(screen, g.Leaderboard(), leaderboard.Entry{}, x, y+5*lineHeight)
}

func (h *HUD) drawGameOver(screen *ebiten.Image, g *game.Game) {
	h.dim(screen)
	ui := g.UI()
	x, y := int(h.camera.Width/2)-120, int(h.camera.Height/2)-140
	drawText(screen, "GAME OVER", x, y, colorHUD)
	drawText(screen, fmt.Sprintf("%s scored %d", g.PlayerName(), ui.Score), x, y+2*lineHeight, colorHUD)
	drawText(screen, "Press ENTER to retry", x, y+3*lineHeight, colorHUD)
	h.drawBoard(screen, g.Leaderboard(), g.LastEntry(), x, y+5*lineHeight)
}

func (h *HUD) drawBoard(screen *ebiten.Image, board leaderboard.Board, mine leaderboard.Entry, x, y int) {
	drawText(screen, "TOP 10", x, y, colorHUD)
	if len(board) == 0 {
		drawText(screen, "no scores yet", x, y+lineHeight, colorHUD)
		return
	}
	rank := board.Rank(mine)
	for i, e := range board {
		clr := color.Color(colorHUD)
		if i+1 == rank {
			clr = colorHighRow
		}
		drawText(screen, fmt.Sprintf("%2d. %-12s %6d", i+1, e.Name, e.Score), x, y+(i+1)*lineHeight, clr)
	}
}

func (h *HUD) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.camera.Width), float32(h.camera.Height), colorOverlay, false)
}
