package host

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"waveshooter/game"
)

var (
	colorBackground = color.RGBA{20, 20, 40, 255}
	colorPlayer     = color.RGBA{0, 255, 0, 255}
	colorBullet     = color.RGBA{255, 255, 0, 255}
	colorEnemy      = color.RGBA{255, 60, 60, 255}
	colorRange      = color.RGBA{60, 60, 110, 255}
	colorEffect     = color.RGBA{255, 200, 80, 255}
)

var itemColors = [...]color.RGBA{
	game.ItemGrow:   {80, 160, 255, 255},
	game.ItemShrink: {160, 80, 255, 255},
	game.ItemSpeed:  {80, 255, 220, 255},
	game.ItemHeal:   {255, 120, 200, 255},
}

// Renderer draws the pools. Like an instanced 3D renderer it copies every pool into a
// fixed-size buffer each frame and skips the slots parked off-scene.
type Renderer struct {
	camera *Camera

	bullets []game.Vec3
	enemies []game.Vec3
	items   [len(game.ItemTypes)][]game.Vec3
	byType  [len(game.ItemTypes)][]game.Item
}

// NewRenderer sizes the instance buffers from cfg
func NewRenderer(camera *Camera, cfg game.Config) *Renderer {
	r := &Renderer{
		camera:  camera,
		bullets: make([]game.Vec3, cfg.MaxBullets),
		enemies: make([]game.Vec3, cfg.MaxEnemies),
	}
	for i := range r.items {
		r.items[i] = make([]game.Vec3, cfg.MaxItemsPerType)
		r.byType[i] = make([]game.Item, 0, cfg.MaxItemsPerType)
	}
	return r
}

// Render draws the play volume, every entity and the player marker
func (r *Renderer) Render(screen *ebiten.Image, w *game.World, cfg game.Config) {
	screen.Fill(colorBackground)

	px, py := r.camera.WorldToScreen(w.Player)
	vector.StrokeCircle(screen, float32(px), float32(py), float32(cfg.MaxObjectDistance*r.camera.Zoom), 1, colorRange, true)

	game.FillInstances(r.bullets, w.Bullets.Live(), game.BulletPos)
	game.FillInstances(r.enemies, w.Enemies.Live(), game.EnemyPos)

	for i := range r.byType {
		r.byType[i] = r.byType[i][:0]
	}
	for _, it := range w.Items.Live() {
		if int(it.Type) < len(r.byType) && len(r.byType[it.Type]) < cap(r.byType[it.Type]) {
			r.byType[it.Type] = append(r.byType[it.Type], it)
		}
	}
	for i := range r.items {
		game.FillInstances(r.items[i], r.byType[i], game.ItemPos)
	}

	radius := cfg.CollisionDistance * r.camera.Zoom
	r.drawInstances(screen, r.bullets, radius*0.4, colorBullet)
	r.drawInstances(screen, r.enemies, radius, colorEnemy)
	for i := range r.items {
		r.drawInstances(screen, r.items[i], radius*0.8, itemColors[i])
	}

	effects := w.Effects.Live()
	for i := range effects {
		sx, sy := r.camera.WorldToScreen(effects[i].Pos)
		progress := effects[i].Age / cfg.HitEffectDuration
		alpha := uint8(255 * math.Max(0, 1-progress))
		clr := color.NRGBA{R: colorEffect.R, G: colorEffect.G, B: colorEffect.B, A: alpha}
		ring := radius * (1 + 2*progress)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(ring), 2, clr, true)
	}

	r.drawPlayer(screen, w)
}

func (r *Renderer) drawInstances(screen *ebiten.Image, instances []game.Vec3, radius float64, clr color.Color) {
	if radius < 1 {
		radius = 1
	}
	for _, p := range instances {
		if p == game.OffScene {
			continue
		}
		sx, sy := r.camera.WorldToScreen(game.Vec2{X: p.X, Z: p.Z})
		if !r.camera.Visible(sx, sy, radius) {
			continue
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, w *game.World) {
	sx, sy := r.camera.WorldToScreen(w.Player)
	size := 0.5 * r.camera.Zoom
	fwd := w.Forward
	right := fwd.Right()

	noseX, noseY := sx+fwd.X*size*1.6, sy+fwd.Z*size*1.6
	leftX, leftY := sx-right.X*size-fwd.X*size*0.6, sy-right.Z*size-fwd.Z*size*0.6
	rightX, rightY := sx+right.X*size-fwd.X*size*0.6, sy+right.Z*size-fwd.Z*size*0.6

	vector.StrokeLine(screen, float32(noseX), float32(noseY), float32(leftX), float32(leftY), 2, colorPlayer, true)
	vector.StrokeLine(screen, float32(leftX), float32(leftY), float32(rightX), float32(rightY), 2, colorPlayer, true)
	vector.StrokeLine(screen, float32(rightX), float32(rightY), float32(noseX), float32(noseY), 2, colorPlayer, true)
}
