package world

// Camera follows the player horizontally with a deadzone and smoothing.
type Camera struct {
	X float64
}

// follow eases the camera toward centering targetX while the target sits
// outside the deadzone and locks onto it inside, then clamps the view to
// [0, mapWidth - screen].
func (c *Camera) follow(targetX, mapWidth float64, cfg Config) {
	half := cfg.ScreenWidth / 2
	centered := targetX - half

	if absf(targetX-(c.X+half)) > cfg.CameraDeadzone {
		c.X += (centered - c.X) * cfg.CameraSmoothing
	} else {
		c.X = centered
	}
	c.X = clamp(c.X, 0, max(0, mapWidth-cfg.ScreenWidth))
}

// snap centers the camera on targetX with no smoothing.
func (c *Camera) snap(targetX, mapWidth float64, cfg Config) {
	c.X = clamp(targetX-cfg.ScreenWidth/2, 0, max(0, mapWidth-cfg.ScreenWidth))
}
