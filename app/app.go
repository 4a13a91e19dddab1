package app

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"lidarsim/engine"
)

// whitePixel backs tinted rectangle rendering via DrawImage with a
// scale/rotate/translate transform.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// App is the ebiten front end: the scene panel on top, one sensor strip
// per viewer below, and keyboard control of the active viewer. All viewers
// share one window rather than opening one each.
type App struct {
	scene   *engine.Scene
	viewers []*Viewer
	config  Config

	active    int  // keyboard-controlled viewer
	dirty     bool // a render pass is pending
	renderErr error
}

// NewApp creates the front end. The first render pass runs on the first
// Update.
func NewApp(scene *engine.Scene, viewers []*Viewer, config Config) *App {
	return &App{scene: scene, viewers: viewers, config: config, dirty: true}
}

// Update handles input and re-runs the render passes when a viewer moved.
func (a *App) Update() error {
	if a.renderErr != nil {
		return a.renderErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(a.viewers) > 0 {
		a.active = (a.active + 1) % len(a.viewers)
	}
	a.handleMovement()
	if a.dirty {
		a.renderAll()
		a.dirty = false
	}
	return a.renderErr
}

// handleMovement applies WASD movement and QE turning to the active
// viewer, one step per key press.
func (a *App) handleMovement() {
	if len(a.viewers) == 0 {
		return
	}
	v := a.viewers[a.active]
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.Move(-a.config.MoveSpeed, 0)
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.Move(a.config.MoveSpeed, 0)
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.Move(0, -a.config.MoveSpeed)
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.Move(0, a.config.MoveSpeed)
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.Turn(-a.config.TurnSpeed)
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.Turn(a.config.TurnSpeed)
		a.dirty = true
	}
}

// renderAll runs every viewer's pass concurrently against the frozen
// scene, then recomposites the strips sequentially on the game thread.
func (a *App) renderAll() {
	results := make([][]engine.Beam, len(a.viewers))
	errs := make([]error, len(a.viewers))

	var wg sync.WaitGroup
	for i, v := range a.viewers {
		wg.Add(1)
		go func(i int, v *Viewer) {
			defer wg.Done()
			results[i], errs[i] = v.Render(a.scene)
		}(i, v)
	}
	wg.Wait()

	for i, v := range a.viewers {
		if errs[i] != nil {
			a.renderErr = errs[i]
			return
		}
		v.Composite(a.scene, results[i])
	}
}

// Draw renders the scene panel and the viewer strips.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	a.drawScene(screen)
	a.drawStrips(screen)
}

// Layout reports the fixed window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.ScreenWidth, a.config.ScreenHeight(len(a.viewers))
}

// drawScene paints the colored groups most-opaque first, then the viewers
// and their lasers on top.
func (a *App) drawScene(screen *ebiten.Image) {
	ids := make([]int, 0, a.scene.Len())
	for id := 0; id < a.scene.Len(); id++ {
		if _, ok := a.scene.Color(id); ok {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		ci, _ := a.scene.Color(ids[i])
		cj, _ := a.scene.Color(ids[j])
		return ci.A > cj.A
	})

	for _, id := range ids {
		group, err := a.scene.Group(id)
		if err != nil {
			continue
		}
		clr, _ := a.scene.Color(id)
		for _, shape := range group.Shapes() {
			drawShape(screen, shape, clr)
		}
	}

	for _, v := range a.viewers {
		cx := float32(v.Camera.X)
		cy := float32(v.Camera.Y)
		for _, laser := range v.Lasers {
			vector.StrokeLine(screen, cx, cy, float32(laser.X), float32(laser.Y), 1, colornames.White, false)
		}
		vector.DrawFilledCircle(screen, cx, cy, 5, colornames.White, true)
	}
}

// drawShape paints one shape. Display is the one place shape kinds are
// told apart; the sensing engine only ever uses Collides/Bounds.
func drawShape(screen *ebiten.Image, shape engine.Shape, clr color.NRGBA) {
	switch s := shape.(type) {
	case *engine.Circle:
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), clr, true)
	case *engine.Rect:
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(2*s.HalfW/3, 2*s.HalfH/3)
		op.GeoM.Translate(-s.HalfW, -s.HalfH)
		op.GeoM.Rotate(s.Angle * math.Pi / 180)
		op.GeoM.Translate(s.X, s.Y)
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(whitePixel, op)
	}
}

// drawStrips scales each viewer's 1-pixel strip to a labeled panel below
// the scene.
func (a *App) drawStrips(screen *ebiten.Image) {
	for i, v := range a.viewers {
		strip := v.Strip()
		top := a.config.SceneHeight + i*a.config.StripHeight

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(a.config.ScreenWidth)/float64(strip.Bounds().Dx()),
			float64(a.config.StripHeight),
		)
		op.GeoM.Translate(0, float64(top))
		screen.DrawImage(strip, op)

		label := fmt.Sprintf("viewer %d", i)
		if i == a.active {
			label += " <"
		}
		ebitenutil.DebugPrintAt(screen, label, 4, top+2)
	}
}
