package engine

import (
	"fmt"
	"math"
)

// opaqueAlpha is the accumulated-alpha level at which a beam is fully
// occluded and stops marching.
const opaqueAlpha = 255

// Camera casts a fan of beams from a pose and reports, per beam, the
// colored groups struck and where the beam ended. It holds no collision
// state between passes.
type Camera struct {
	X, Y       float64
	Heading    float64 // degrees
	FOV        float64 // degrees
	Resolution int     // beams across the field of view
}

// NewCamera creates a camera. The resolution must be at least 2: the angle
// step divides by resolution-1, and a single beam has no defined fan.
func NewCamera(x, y, heading, fov float64, resolution int) (*Camera, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: resolution %d must be at least 2", ErrInvalidConfig, resolution)
	}
	return &Camera{X: x, Y: y, Heading: heading, FOV: fov, Resolution: resolution}, nil
}

// Hit is one obstacle struck by a beam.
type Hit struct {
	// Group is the registry id of the struck group.
	Group int

	// Distance is the refined distance from the camera to the boundary.
	Distance float64
}

// Beam is the result of casting one beam.
type Beam struct {
	// Index is the beam's position across the field of view.
	Index int

	// Hits lists struck groups in discovery order, nearest first, at most
	// one entry per group. Renderers composite them back to front by
	// walking the list in reverse.
	Hits []Hit

	// End is where the beam stopped: the position at the farthest hit's
	// refined distance, or at the last marched sample when nothing was
	// hit.
	End Vec
}

// BeamAngles returns the global direction of each beam in degrees: exactly
// Resolution angles evenly spaced across the field of view, with both
// endpoint angles exact even when the step does not divide evenly.
func (c *Camera) BeamAngles() []float64 {
	angles := make([]float64, c.Resolution)
	step := c.FOV / float64(c.Resolution-1)
	for i := range angles {
		angles[i] = c.Heading - c.FOV/2 + float64(i)*step
	}
	angles[c.Resolution-1] = c.Heading + c.FOV/2
	return angles
}

// pointAt returns the position at the given distance along a beam.
func (c *Camera) pointAt(distance, angleDeg float64) Vec {
	rad := radians(angleDeg)
	return Vec{
		X: c.X + distance*math.Cos(rad),
		Y: c.Y + distance*math.Sin(rad),
	}
}

// detailedDistance refines a coarse hit by bisection: test the midpoint of
// the last step; if it still collides the boundary is nearer, otherwise
// farther. Each round halves the step, so the reported distance converges
// to within threshold of the true crossing no matter how coarse the march
// step was. The loop runs at most log2(step/threshold) rounds.
func (c *Camera) detailedDistance(g *Group, distance, angleDeg, step, threshold float64) float64 {
	for step >= threshold && distance-step/2 >= threshold {
		if p := c.pointAt(distance-step/2, angleDeg); g.Collides(p.X, p.Y) {
			distance -= step / 2
		}
		step /= 2
	}
	return distance
}

// Render casts the camera's full fan against the scene. A pass is a pure
// function of the scene and pose: it builds its own broad-phase grid from
// the frozen registry and mutates nothing, so passes of independent
// cameras may run concurrently.
func (c *Camera) Render(scene *Scene, cfg RenderConfig) ([]Beam, error) {
	if c.Resolution < 2 {
		return nil, fmt.Errorf("%w: resolution %d must be at least 2", ErrInvalidConfig, c.Resolution)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	candidates, err := c.candidateGroups(scene, cfg)
	if err != nil {
		return nil, err
	}
	grid, err := NewSpatialGrid(cfg.CellSize)
	if err != nil {
		return nil, err
	}
	for _, g := range candidates {
		grid.Insert(g)
	}

	beams := make([]Beam, 0, c.Resolution)
	for index, angle := range c.BeamAngles() {
		beams = append(beams, c.castBeam(scene, grid, index, angle, cfg))
	}
	return beams, nil
}

// candidateGroups resolves the set of groups a pass senses: the explicit
// subset when given, otherwise every group with a color. Colorless groups
// are dropped in both cases since their alpha cannot be accumulated.
func (c *Camera) candidateGroups(scene *Scene, cfg RenderConfig) ([]*Group, error) {
	if cfg.Groups == nil {
		groups := make([]*Group, 0, scene.Len())
		for id := 0; id < scene.Len(); id++ {
			if _, ok := scene.Color(id); !ok {
				continue
			}
			g, err := scene.Group(id)
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)
		}
		return groups, nil
	}

	groups := make([]*Group, 0, len(cfg.Groups))
	for _, id := range cfg.Groups {
		g, err := scene.Group(id)
		if err != nil {
			return nil, err
		}
		if _, ok := scene.Color(id); !ok {
			continue
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// castBeam marches one beam outward in coarse steps, recording each newly
// struck candidate with a refined distance and accumulating its alpha.
// Marching stops when the beam passes max range or the accumulated alpha
// reaches full opacity. The alpha sum is deliberately left unclamped; it
// only gates loop continuation.
func (c *Camera) castBeam(scene *Scene, grid *SpatialGrid, index int, angle float64, cfg RenderConfig) Beam {
	var hits []Hit
	alpha := 0
	end := c.pointAt(0, angle)

	for distance := 0.0; distance <= cfg.MaxRange && alpha < opaqueAlpha; distance += cfg.StepSize {
		p := c.pointAt(distance, angle)
		end = p

		for _, g := range grid.Query(p.X, p.Y) {
			if beamHas(hits, g.id) {
				continue
			}
			if !g.Collides(p.X, p.Y) {
				continue
			}
			refined := c.detailedDistance(g, distance, angle, cfg.StepSize, cfg.DetailThreshold)
			hits = append(hits, Hit{Group: g.id, Distance: refined})
			clr, _ := scene.Color(g.id)
			alpha += int(clr.A)
		}
	}

	// Hits were discovered in ascending coarse order, so the last one is
	// the farthest; its refined distance is the beam's endpoint.
	if n := len(hits); n > 0 {
		end = c.pointAt(hits[n-1].Distance, angle)
	}
	return Beam{Index: index, Hits: hits, End: end}
}

// beamHas reports whether the beam already recorded a hit on the group.
func beamHas(hits []Hit, id int) bool {
	for _, h := range hits {
		if h.Group == id {
			return true
		}
	}
	return false
}
