package app

// Config holds the window layout and control speeds.
type Config struct {
	// ScreenWidth is the window width in pixels; world x maps 1:1 onto
	// the scene panel.
	ScreenWidth int

	// SceneHeight is the height of the scene panel in pixels; world y
	// maps 1:1 onto it.
	SceneHeight int

	// StripHeight is the on-screen height of one viewer's sensor strip.
	StripHeight int

	// MoveSpeed is the distance one key press moves the active viewer, in
	// world units.
	MoveSpeed float64

	// TurnSpeed is the angle one key press turns the active viewer, in
	// degrees.
	TurnSpeed float64
}

// DefaultConfig returns the default layout and control speeds.
func DefaultConfig() Config {
	return Config{
		ScreenWidth: 500,
		SceneHeight: 500,
		StripHeight: 50,
		MoveSpeed:   10,
		TurnSpeed:   10,
	}
}

// ScreenHeight returns the total window height when showing strips for the
// given number of viewers.
func (c Config) ScreenHeight(viewerCount int) int {
	return c.SceneHeight + viewerCount*c.StripHeight
}
