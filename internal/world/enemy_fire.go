package world

import "math"

// enemyFire shoots at the player. A missed roll perturbs the aim instead of
// skipping the shot.
func (w *World) enemyFire(e *Enemy) {
	if e.IsFiring {
		return
	}
	cfg := w.Cfg
	p := &w.Player

	from := e.Center()
	target := p.Center()
	if e.LeadsTarget {
		target.X = leadTarget(p, cfg.EnemyLeadDistance)
	}
	angle := math.Atan2(target.Y-from.Y, target.X-from.X)
	if w.chance(e.MissChance) {
		angle += w.randUniform(-cfg.EnemyMissSpread, cfg.EnemyMissSpread)
	}

	e.IsFiring = true
	e.FireTimer = cfg.EnemyFireDuration
	e.FireAngle = angle

	switch e.Weapon {
	case WeaponSniper:
		line := w.castHitLine(from, angle)
		e.FireLine = &line

	case WeaponRifle:
		vel := Vec2{X: math.Cos(angle) * cfg.EnemyRifleSpeed, Y: math.Sin(angle) * cfg.EnemyRifleSpeed}
		b := newBullet(from.Add(vel.Mul(2)), vel, cfg.EnemyRifleDamage, 8)
		b.setPierce(cfg.EnemyRiflePierce)
		e.Bullets = append(e.Bullets, b)

	default:
		vel := Vec2{X: math.Cos(angle) * cfg.EnemyPistolSpeed, Y: math.Sin(angle) * cfg.EnemyPistolSpeed}
		e.Bullets = append(e.Bullets, newBullet(from.Add(vel.Mul(2)), vel, cfg.EnemyPistolDamage, 8))
	}
}

// leadTarget predicts where the player's center will be. A still player is
// aimed at directly.
func leadTarget(p *Player, leadDistance float64) float64 {
	cx := p.Center().X
	vx := p.VelocityX
	if vx == 0 {
		return cx
	}
	lead := leadDistance / math.Max(1, absf(vx))
	return cx + vx*lead
}

// throwGrenade lobs a ballistic grenade from e's center toward target.
func (w *World) throwGrenade(e *Enemy, target Vec2) {
	cfg := w.Cfg
	from := e.Center()
	dir := target.Sub(from).Norm()
	speed := cfg.GrenadeSpeed + w.randUniform(-cfg.GrenadeSpeedJitter, cfg.GrenadeSpeedJitter)

	e.Grenades = append(e.Grenades, Grenade{
		Pos:   from,
		Vel:   Vec2{X: dir.X * speed, Y: dir.Y*speed - cfg.GrenadeLift},
		Timer: cfg.GrenadeTimer,
		Alive: true,
	})
}

// launchHoming fires one homing grenade from e toward the player.
func (w *World) launchHoming(e *Enemy) {
	cfg := w.Cfg
	from := e.Center()
	dir := w.Player.Center().Sub(from).Norm()

	e.Grenades = append(e.Grenades, Grenade{
		Pos:    from,
		Vel:    Vec2{X: dir.X * cfg.HomingLaunchSpeed, Y: dir.Y*cfg.HomingLaunchSpeed - cfg.GrenadeLift},
		Timer:  cfg.HomingTimer,
		Alive:  true,
		Homing: true,
	})
}
