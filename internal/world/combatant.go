package world

import (
	"github.com/BradleyBao/Neurotrace/internal/level"
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

// hitboxSize is the edge of every actor's square hitbox and sprite.
const hitboxSize = 16

// Combatant is the resource model shared by the player and every enemy.
type Combatant struct {
	ID     int
	Pos    Vec2
	VelY   float64
	Speed  float64
	Facing int
	Alive  bool
	HP     int
	MaxHP  int

	Visual      VisualState
	VisualTimer int

	IsJumping bool
	IsMoving  bool
}

func newCombatant(id int, pos Vec2, hp int, speed float64) Combatant {
	return Combatant{
		ID:     id,
		Pos:    pos,
		Speed:  speed,
		Facing: 1,
		Alive:  true,
		HP:     hp,
		MaxHP:  hp,
	}
}

func (c *Combatant) Center() Vec2 {
	return Vec2{X: c.Pos.X + hitboxSize/2, Y: c.Pos.Y + hitboxSize/2}
}

func (c *Combatant) Hitbox() geom.Rect {
	return geom.Rect{X: c.Pos.X, Y: c.Pos.Y, W: hitboxSize, H: hitboxSize}
}

// applyDamage lowers HP and reports whether this hit was the killing blow.
// HP never drops below 0 and Alive turns false exactly once.
func (c *Combatant) applyDamage(amount, flashFrames int) bool {
	if !c.Alive || amount <= 0 {
		return false
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
		c.Visual = VisualDefeated
		c.VisualTimer = 0
		return true
	}
	c.Visual = VisualDamage
	c.VisualTimer = flashFrames
	return false
}

func (c *Combatant) tickVisual() {
	if c.Visual != VisualDamage {
		return
	}
	c.VisualTimer--
	if c.VisualTimer <= 0 && c.HP > 0 {
		c.Visual = VisualNormal
		c.VisualTimer = 0
	}
}

// ============================================================================
// PHYSICS
// ============================================================================

func (c *Combatant) applyGravity(g float64) {
	c.VelY += g
	c.Pos.Y += c.VelY
}

func (c *Combatant) clampToMapHeight(lvl *level.Descriptor) {
	if c.Pos.Y > lvl.Height {
		c.Pos.Y = lvl.Height
		c.VelY = 0
	}
}

// resolveFloors lands the actor on the first floor its feet are inside,
// allowing a small tolerance below the floor's surface.
func (c *Combatant) resolveFloors(lvl *level.Descriptor, tolerance float64) {
	for _, f := range lvl.Floors {
		if c.Pos.X < f.X+f.W &&
			c.Pos.X+hitboxSize > f.X &&
			c.Pos.Y+hitboxSize >= f.Y &&
			c.Pos.Y+hitboxSize <= f.Y+f.H+tolerance {
			c.Pos.Y = f.Y - hitboxSize
			c.VelY = 0
			c.IsJumping = false
			return
		}
	}
	c.IsJumping = true
}

// clampToWalls is skipped when the level lacks wall data.
func (c *Combatant) clampToWalls(lvl *level.Descriptor) {
	minX, maxX, ok := lvl.WallBounds(hitboxSize)
	if !ok {
		return
	}
	if c.Pos.X < minX {
		c.Pos.X = minX
	}
	if c.Pos.X > maxX {
		c.Pos.X = maxX
	}
}

// standsOnFloorAt reports whether a floor top at the actor's feet spans x.
func (c *Combatant) standsOnFloorAt(lvl *level.Descriptor, x float64) bool {
	feet := c.Pos.Y + hitboxSize
	for _, f := range lvl.Floors {
		if f.X <= x && x < f.X+f.W && absf(feet-f.Y) < 1e-6 {
			return true
		}
	}
	return false
}
