package world

import (
	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

// Enemy is one hostile combatant. Every archetype, the boss included, runs
// through the same update; Kind and the ability tables select the behavior.
type Enemy struct {
	Combatant

	Kind        EnemyKind
	Name        string
	Weapon      WeaponKind
	State       AIState
	BaseSpeed   float64
	MissChance  float64
	LeadsTarget bool
	SpriteY     int

	PatrolOrigin float64
	PatrolRange  float64
	PatrolDir    int
	StandTimer   int
	RetreatTimer int

	AttackCooldown    int
	AttackCooldownMax int

	IsFiring  bool
	FireTimer int
	FireAngle float64
	FireLine  *geom.Segment

	Ability    TimedAbility
	PulseTimer int
	RollDir    int

	Bullets  []Bullet
	Grenades []Grenade

	// Boss is nil for regular enemies.
	Boss *BossState

	// CorpseTimer counts down after death; the body is removed at zero once
	// its projectiles are gone.
	CorpseTimer int
}

func (e *Enemy) hasProjectiles() bool {
	return len(e.Bullets) > 0 || len(e.Grenades) > 0
}

// ============================================================================
// DAMAGE
// ============================================================================

// damageEnemy is the single damage entry point for enemies. Barrier,
// camouflage and the boss rules are applied here.
func (w *World) damageEnemy(e *Enemy, amount int) {
	if !e.Alive || amount <= 0 {
		return
	}
	if e.Boss != nil {
		w.damageBoss(e, amount)
		return
	}

	if e.Ability.Active {
		switch e.Ability.Kind {
		case AbilityBarrier:
			amount = max(1, amount/3)
		case AbilityCamouflage:
			if w.chance(w.Cfg.CamouflageEvade) {
				return
			}
		}
	}

	if e.applyDamage(amount, w.Cfg.FlashFrames) {
		w.onEnemyKilled(e)
	}
}

func (w *World) onEnemyKilled(e *Enemy) {
	e.IsFiring = false
	e.FireLine = nil
	e.IsMoving = false
	w.Stats.EnemiesKilled++
	logger_config.Debugf("enemy %d (%s) defeated at frame %d", e.ID, e.Name, w.Frame)
}

// ============================================================================
// UPDATE
// ============================================================================

func (w *World) updateEnemy(e *Enemy) {
	e.tickVisual()

	if e.Alive {
		if e.Boss != nil {
			w.updateBoss(e)
		} else {
			w.updateSpecial(e)
			w.runAI(e)
		}
		w.applyEnemyPhysics(e)
		e.tickWeapon()
	} else if e.CorpseTimer > 0 {
		e.CorpseTimer--
	}

	// projectiles in flight keep going after their owner dies
	w.stepEnemyProjectiles(e)
}

func (w *World) applyEnemyPhysics(e *Enemy) {
	e.applyGravity(w.Cfg.Gravity)
	e.clampToWalls(&w.Level)
	e.clampToMapHeight(&w.Level)
	e.resolveFloors(&w.Level, w.Cfg.FloorTolerance)
}

func (e *Enemy) tickWeapon() {
	if e.IsFiring {
		e.FireTimer--
		if e.FireTimer <= 0 {
			e.IsFiring = false
			e.FireLine = nil
		}
	}
	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}
}

func (w *World) stepEnemyProjectiles(e *Enemy) {
	for i := range e.Bullets {
		b := &e.Bullets[i]
		w.advanceBullet(b)
		w.hitPlayerWith(b)
	}
	e.Bullets = pruneBullets(e.Bullets)

	for i := range e.Grenades {
		w.stepGrenade(&e.Grenades[i])
	}
	e.Grenades = pruneGrenades(e.Grenades)

	// the sniper line damages every frame it is displayed
	p := &w.Player
	if e.Alive && e.IsFiring && e.FireLine != nil && p.Alive &&
		geom.SegmentHitsRect(*e.FireLine, p.Hitbox()) {
		w.damagePlayer(w.Cfg.EnemySniperDamage)
	}
}

// ============================================================================
// AI STATE MACHINE
// ============================================================================

// runAI performs at most one state transition per frame. Distances are
// horizontal only.
func (w *World) runAI(e *Enemy) {
	p := &w.Player
	r := rangesFor(e.Weapon)
	dist := absf(p.Pos.X - e.Pos.X)

	switch e.State {
	case StatePatrol:
		if dist < r.attackMax {
			e.State = StateChase
			return
		}
		w.patrol(e)

	case StateChase:
		switch {
		case dist < r.retreat:
			w.beginRetreat(e)
		case dist >= r.attackMin && dist < r.attackMax:
			e.State = StateAttack
			e.IsMoving = false
		case dist > r.patrol:
			e.State = StatePatrol
			e.PatrolOrigin = e.Pos.X
		default:
			w.stepToward(e, p.Pos.X)
		}

	case StateAttack:
		switch {
		case dist < r.retreat:
			w.beginRetreat(e)
		case dist > r.attackMax:
			e.State = StateChase
		default:
			e.IsMoving = false
			e.Facing = facingToward(e.Pos.X, p.Pos.X)
			if e.AttackCooldown <= 0 && p.Alive {
				w.enemyFire(e)
				e.AttackCooldown = e.AttackCooldownMax
			}
			if e.Ability.Kind != AbilityNone && w.chance(w.Cfg.EnemySpecialChance) {
				w.useSpecial(e)
			}
		}

	case StateRetreat:
		if e.RetreatTimer <= 0 {
			e.State = StatePatrol
			e.PatrolOrigin = e.Pos.X
			e.IsMoving = false
			return
		}
		e.RetreatTimer--
		w.stepAway(e, p.Pos.X)
	}
}

func (w *World) patrol(e *Enemy) {
	if e.StandTimer > 0 {
		e.StandTimer--
		e.IsMoving = false
		return
	}

	e.IsMoving = true
	e.Facing = e.PatrolDir
	dx := e.Speed * float64(e.PatrolDir)
	blocked := !w.canStep(e, dx)
	if !blocked {
		e.Pos.X += dx
	}
	if blocked || absf(e.Pos.X-e.PatrolOrigin) > e.PatrolRange {
		e.PatrolDir = -e.PatrolDir
		e.StandTimer = w.randInt(w.Cfg.EnemyStandMin, w.Cfg.EnemyStandMax)
		e.IsMoving = false
	}
}

func (w *World) beginRetreat(e *Enemy) {
	e.State = StateRetreat
	e.RetreatTimer = w.randInt(w.Cfg.EnemyRetreatMin, w.Cfg.EnemyRetreatMax)
}

func (w *World) stepToward(e *Enemy, targetX float64) {
	w.stepHorizontal(e, facingToward(e.Pos.X, targetX))
}

func (w *World) stepAway(e *Enemy, targetX float64) {
	w.stepHorizontal(e, -facingToward(e.Pos.X, targetX))
}

// stepHorizontal moves e one step in dir unless that would walk it off the
// floor it stands on.
func (w *World) stepHorizontal(e *Enemy, dir int) {
	e.Facing = dir
	dx := e.Speed * float64(dir)
	if !w.canStep(e, dx) {
		e.IsMoving = false
		return
	}
	e.Pos.X += dx
	e.IsMoving = true
}

// canStep reports whether a floor whose top is at the enemy's feet spans
// the destination x. An enemy in the air never has one, so it holds still.
func (w *World) canStep(e *Enemy, dx float64) bool {
	return e.standsOnFloorAt(&w.Level, e.Pos.X+dx)
}

func facingToward(fromX, toX float64) int {
	if toX < fromX {
		return -1
	}
	return 1
}
