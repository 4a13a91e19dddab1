package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"lidarsim/engine"
)

// Viewer couples a camera with its sensing parameters and the
// 1-pixel-tall strip the sensed colors are composited onto.
type Viewer struct {
	Camera   *engine.Camera
	MaxRange float64
	StepSize float64

	// Lasers holds every beam's endpoint from the last pass, for drawing
	// on the scene panel.
	Lasers []engine.Vec

	strip *ebiten.Image
}

// NewViewer creates a viewer with a validated camera and an empty strip.
func NewViewer(x, y, heading, fov float64, resolution int, maxRange, stepSize float64) (*Viewer, error) {
	cam, err := engine.NewCamera(x, y, heading, fov, resolution)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		Camera:   cam,
		MaxRange: maxRange,
		StepSize: stepSize,
		strip:    ebiten.NewImage(resolution, 1),
	}, nil
}

// Move translates the viewer relative to its heading: negative frontBack
// is forward, positive leftRight strafes right.
func (v *Viewer) Move(frontBack, leftRight float64) {
	rad := v.Camera.Heading * math.Pi / 180
	v.Camera.X += -frontBack*math.Cos(rad) - leftRight*math.Sin(rad)
	v.Camera.Y += -frontBack*math.Sin(rad) + leftRight*math.Cos(rad)
}

// Turn rotates the viewer by the given angle in degrees.
func (v *Viewer) Turn(deg float64) {
	v.Camera.Heading += deg
}

// Render runs one render pass against the scene. It is pure and safe to
// call concurrently with other viewers' passes.
func (v *Viewer) Render(scene *engine.Scene) ([]engine.Beam, error) {
	cfg := engine.DefaultRenderConfig()
	cfg.StepSize = v.StepSize
	cfg.MaxRange = v.MaxRange
	return v.Camera.Render(scene, cfg)
}

// Composite repaints the sensor strip from a pass's beams: per beam a
// black base, then the hits painted far to near with source-over blending,
// each dimmed by its distance. Must run on the game thread since it writes
// strip pixels.
func (v *Viewer) Composite(scene *engine.Scene, beams []engine.Beam) {
	v.Lasers = v.Lasers[:0]
	for _, beam := range beams {
		px := color.NRGBA{A: 255}
		for i := len(beam.Hits) - 1; i >= 0; i-- {
			hit := beam.Hits[i]
			clr, ok := scene.Color(hit.Group)
			if !ok {
				continue
			}
			fade := 1 - hit.Distance/v.MaxRange
			if fade < 0 {
				fade = 0
			}
			px = blend(px, color.NRGBA{
				R: uint8(float64(clr.R) * fade),
				G: uint8(float64(clr.G) * fade),
				B: uint8(float64(clr.B) * fade),
				A: clr.A,
			})
		}
		v.strip.Set(beam.Index, 0, px)
		v.Lasers = append(v.Lasers, beam.End)
	}
}

// Strip returns the viewer's sensor strip image.
func (v *Viewer) Strip() *ebiten.Image {
	return v.strip
}

// blend source-over composites src onto an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	return color.NRGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a)),
		A: 255,
	}
}
