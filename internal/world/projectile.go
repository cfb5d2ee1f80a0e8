package world

import (
	"math"
	"slices"

	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

// Bullet is a linear projectile owned by the actor that fired it.
type Bullet struct {
	Pos    Vec2
	Vel    Vec2
	Alive  bool
	Damage int
	Color  int

	// Penetrate lets the bullet continue after a hit. PierceLeft counts the
	// remaining hits when it is positive; a negative value means no budget.
	Penetrate  bool
	PierceLeft int

	hits []int // combatant IDs already damaged by this bullet
}

func newBullet(pos, vel Vec2, damage, color int) Bullet {
	return Bullet{Pos: pos, Vel: vel, Alive: true, Damage: damage, Color: color, PierceLeft: -1}
}

// setPierce makes b penetrating; budget <= 0 means unlimited.
func (b *Bullet) setPierce(budget int) {
	b.Penetrate = true
	if budget > 0 {
		b.PierceLeft = budget
	} else {
		b.PierceLeft = -1
	}
}

// strike registers a hit on combatant id. It returns false when this bullet
// already damaged that combatant, so every target is damaged at most once.
func (b *Bullet) strike(id int) bool {
	if !b.Alive || slices.Contains(b.hits, id) {
		return false
	}
	if !b.Penetrate {
		b.Alive = false
		return true
	}
	b.hits = append(b.hits, id)
	if b.PierceLeft > 0 {
		b.PierceLeft--
		if b.PierceLeft == 0 {
			b.Alive = false
		}
	}
	return true
}

// Grenade is either ballistic (gravity, ground fuse) or homing.
type Grenade struct {
	Pos      Vec2
	Vel      Vec2
	Timer    int
	Alive    bool
	Exploded bool
	Homing   bool
}

// ============================================================================
// STEPPING
// ============================================================================

// advanceBullet moves b one frame and kills it on world bounds or terrain.
func (w *World) advanceBullet(b *Bullet) {
	if !b.Alive {
		return
	}
	b.Pos = b.Pos.Add(b.Vel)

	if w.outOfBounds(b.Pos) {
		b.Alive = false
		return
	}
	if w.inTerrain(b.Pos) {
		b.Alive = false
	}
}

// outOfBounds treats the far edges as outside, so a bullet reaching
// x == width is removed on that frame.
func (w *World) outOfBounds(p Vec2) bool {
	return p.X < 0 || p.X >= w.Level.Width || p.Y < 0 || p.Y >= w.Level.Height
}

func (w *World) inTerrain(p Vec2) bool {
	for _, f := range w.Level.Floors {
		if geom.PointInRect(p.X, p.Y, f) {
			return true
		}
	}
	for _, r := range w.Level.Walls {
		if geom.PointInRect(p.X, p.Y, r) {
			return true
		}
	}
	return false
}

// hitPlayerWith applies an enemy bullet to the player if it overlaps the
// player's hitbox.
func (w *World) hitPlayerWith(b *Bullet) {
	p := &w.Player
	if !b.Alive || !p.Alive {
		return
	}
	if !p.Hitbox().ContainsStrict(b.Pos) {
		return
	}
	if b.strike(p.ID) {
		w.damagePlayer(b.Damage)
	}
}

func pruneBullets(bs []Bullet) []Bullet {
	return slices.DeleteFunc(bs, func(b Bullet) bool { return !b.Alive })
}

func pruneGrenades(gs []Grenade) []Grenade {
	return slices.DeleteFunc(gs, func(g Grenade) bool { return !g.Alive })
}

// stepGrenade advances g one frame against the player and explodes it when
// its fuse or trigger condition is met. Explosion damage is applied once.
func (w *World) stepGrenade(g *Grenade) {
	if !g.Alive {
		return
	}
	if g.Homing {
		w.stepHomingGrenade(g)
		return
	}

	cfg := w.Cfg
	g.Pos = g.Pos.Add(g.Vel)
	g.Vel.Y += cfg.GrenadeGravity
	g.Timer--

	if g.Timer <= 0 || g.Pos.Y > w.Level.Height {
		w.explodeGrenade(g, cfg.GrenadeDamage)
	}
}

func (w *World) stepHomingGrenade(g *Grenade) {
	cfg := w.Cfg
	p := &w.Player
	target := p.Center()

	if p.Alive {
		to := target.Sub(g.Pos)
		if to.Len() > 0 {
			desired := to.Norm().Mul(cfg.HomingMaxSpeed)
			steer := desired.Sub(g.Vel)
			if steer.Len() > cfg.HomingSteer {
				steer = steer.Norm().Mul(cfg.HomingSteer)
			}
			g.Vel = g.Vel.Add(steer)
		}
	}
	if g.Vel.Len() > cfg.HomingMaxSpeed {
		g.Vel = g.Vel.Norm().Mul(cfg.HomingMaxSpeed)
	}

	g.Pos = g.Pos.Add(g.Vel)
	g.Timer--

	if p.Alive && geom.Dist(g.Pos, target) < cfg.HomingStrikeDist {
		g.Alive = false
		g.Exploded = true
		w.damagePlayer(cfg.HomingStrikeDamage)
		return
	}
	if g.Timer <= 0 {
		w.explodeGrenade(g, cfg.GrenadeDamage)
	}
}

// explodeGrenade retires g and damages the player inside the blast radius.
func (w *World) explodeGrenade(g *Grenade, damage int) {
	g.Alive = false
	g.Exploded = true

	p := &w.Player
	if !p.Alive {
		return
	}
	if geom.Dist(g.Pos, p.Center()) <= w.Cfg.GrenadeRadius {
		w.damagePlayer(damage)
	}
}

// ============================================================================
// HIT LINES
// ============================================================================

// castHitLine marches from the shooter's muzzle along angle in fixed steps
// and stops at the first floor or the world edge.
func (w *World) castHitLine(center Vec2, angle float64) geom.Segment {
	cfg := w.Cfg
	cos, sin := math.Cos(angle), math.Sin(angle)
	muzzle := Vec2{
		X: math.Trunc(center.X + cos*cfg.MuzzleOffset),
		Y: math.Trunc(center.Y + sin*cfg.MuzzleOffset),
	}

	step := cfg.HitLineStep
	if step <= 0 {
		step = 1
	}
	for l := 0.0; l < cfg.HitLineMaxLength; l += step {
		tip := Vec2{
			X: math.Trunc(muzzle.X + cos*l),
			Y: math.Trunc(muzzle.Y + sin*l),
		}
		if w.outOfBounds(tip) {
			return geom.Segment{A: muzzle, B: tip}
		}
		for _, f := range w.Level.Floors {
			if f.X <= tip.X && tip.X < f.X+f.W && f.Y <= tip.Y && tip.Y < f.Y+f.H {
				return geom.Segment{A: muzzle, B: tip}
			}
		}
	}

	end := Vec2{
		X: math.Trunc(muzzle.X + cos*cfg.HitLineMaxLength),
		Y: math.Trunc(muzzle.Y + sin*cfg.HitLineMaxLength),
	}
	return geom.Segment{A: muzzle, B: end}
}
