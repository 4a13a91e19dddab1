package engine

import "fmt"

// RenderConfig holds the parameters of one render pass.
type RenderConfig struct {
	// StepSize is the coarse march increment in world units.
	StepSize float64

	// MaxRange is the distance at which a beam gives up.
	MaxRange float64

	// DetailThreshold is the precision target of hit refinement: bisection
	// stops once its step falls below this.
	DetailThreshold float64

	// CellSize is the broad-phase grid cell size in world units.
	CellSize float64

	// Groups optionally restricts the pass to these group ids. When nil,
	// every colored group is considered. Colorless groups stay invisible
	// either way.
	Groups []int
}

// DefaultRenderConfig returns the default render parameters.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		StepSize:        1,
		MaxRange:        100,
		DetailThreshold: 1,
		CellSize:        100,
	}
}

// Validate rejects configurations that would never terminate or would
// produce meaningless distances. A zero or negative step size must not
// reach the march loop, and a zero detail threshold would keep the
// refinement halving forever.
func (c RenderConfig) Validate() error {
	if c.StepSize <= 0 {
		return fmt.Errorf("%w: step size %g must be positive", ErrInvalidConfig, c.StepSize)
	}
	if c.MaxRange <= 0 {
		return fmt.Errorf("%w: max range %g must be positive", ErrInvalidConfig, c.MaxRange)
	}
	if c.DetailThreshold <= 0 {
		return fmt.Errorf("%w: detail threshold %g must be positive", ErrInvalidConfig, c.DetailThreshold)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %g must be positive", ErrInvalidConfig, c.CellSize)
	}
	return nil
}
