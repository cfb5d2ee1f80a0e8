package world

import (
	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

// bossPriority is the order in which the scheduler tries scheduled abilities.
// Teleport is not listed: it is triggered by incoming damage.
var bossPriority = []AbilityKind{
	AbilityGrenadeBarrage,
	AbilitySummon,
	AbilityShieldOverload,
	AbilityEMPWave,
	AbilityGravityWell,
}

// BossState is the extra state carried by the boss archetype.
type BossState struct {
	Teleport  TimedAbility
	Abilities []TimedAbility // bossPriority order

	Berserk bool

	// presentation
	Flashing   bool
	EMPRadius  float64
	WellAnchor *Vec2

	teleportTo Vec2
}

func newBossState(cfg Config) *BossState {
	b := &BossState{
		Teleport:  newTimedAbility(AbilityTeleport, cfg.BossAbilities[AbilityTeleport]),
		Abilities: make([]TimedAbility, 0, len(bossPriority)),
	}
	for _, k := range bossPriority {
		b.Abilities = append(b.Abilities, newTimedAbility(k, cfg.BossAbilities[k]))
	}
	return b
}

func (b *BossState) ability(kind AbilityKind) *TimedAbility {
	if kind == AbilityTeleport {
		return &b.Teleport
	}
	for i := range b.Abilities {
		if b.Abilities[i].Kind == kind {
			return &b.Abilities[i]
		}
	}
	return nil
}

// ActiveAbility returns the running scheduled ability, or AbilityNone.
func (b *BossState) ActiveAbility() AbilityKind {
	for i := range b.Abilities {
		if b.Abilities[i].Active {
			return b.Abilities[i].Kind
		}
	}
	return AbilityNone
}

func (b *BossState) shielded() bool {
	a := b.ability(AbilityShieldOverload)
	return a != nil && a.Active
}

// ============================================================================
// ABILITY HOOKS
// ============================================================================

var bossAbilities = map[AbilityKind]abilityHooks{
	AbilityTeleport: {
		activate: func(w *World, e *Enemy) {
			e.Boss.teleportTo = w.teleportTarget(e)
			e.Boss.Flashing = true
		},
		update: func(w *World, e *Enemy) {
			a := &e.Boss.Teleport
			if a.atMidpoint() {
				e.Pos = e.Boss.teleportTo
				e.VelY = 0
				e.Boss.Flashing = false
			}
		},
		deactivate: func(w *World, e *Enemy) {
			e.Boss.Flashing = false
		},
	},
	AbilityGrenadeBarrage: {
		activate: func(w *World, e *Enemy) {
			w.launchHoming(e)
		},
		update: func(w *World, e *Enemy) {
			a := e.Boss.ability(AbilityGrenadeBarrage)
			every := w.Cfg.BarrageEvery
			if every > 0 && a.Timer != a.Duration && a.Timer%every == 0 {
				w.launchHoming(e)
			}
		},
	},
	AbilitySummon: {
		update: func(w *World, e *Enemy) {
			if e.Boss.ability(AbilitySummon).atMidpoint() {
				w.summonMinions(e)
			}
		},
	},
	// shield overload is passive: damageBoss ignores hits while it runs
	AbilityShieldOverload: {},
	AbilityEMPWave: {
		activate: func(w *World, e *Enemy) {
			e.Boss.EMPRadius = 0
		},
		update: func(w *World, e *Enemy) {
			a := e.Boss.ability(AbilityEMPWave)
			cfg := w.Cfg
			e.Boss.EMPRadius = cfg.BossEMPRadius * float64(a.elapsed()) / float64(max(1, a.Duration))
			if !a.atMidpoint() {
				return
			}
			p := &w.Player
			if p.Alive && geom.Dist(e.Center(), p.Center()) <= cfg.BossEMPRadius {
				w.damagePlayer(cfg.BossEMPDamage)
				p.applyEMP(cfg.BossEMPDebuff)
			}
		},
		deactivate: func(w *World, e *Enemy) {
			e.Boss.EMPRadius = 0
		},
	},
	AbilityGravityWell: {
		activate: func(w *World, e *Enemy) {
			dir := facingToward(w.Player.Pos.X, e.Pos.X)
			anchor := w.Player.Center().Add(Vec2{X: float64(dir) * w.Cfg.BossWellOffset})
			e.Boss.WellAnchor = &anchor
		},
		update: func(w *World, e *Enemy) {
			if e.Boss.WellAnchor != nil {
				w.pullPlayer(*e.Boss.WellAnchor)
			}
		},
		deactivate: func(w *World, e *Enemy) {
			e.Boss.WellAnchor = nil
		},
	},
}

// ============================================================================
// SCHEDULER
// ============================================================================

// updateBoss replaces the regular special-ability step. While any ability
// runs the boss stands still and holds its fire.
func (w *World) updateBoss(e *Enemy) {
	b := e.Boss

	w.tickBossAbility(e, &b.Teleport)
	for i := range b.Abilities {
		w.tickBossAbility(e, &b.Abilities[i])
	}

	if b.Teleport.Active || b.ActiveAbility() != AbilityNone || w.startBossAbility(e) {
		e.IsMoving = false
		e.AttackCooldown = e.AttackCooldownMax
		return
	}
	w.runAI(e)
}

func (w *World) tickBossAbility(e *Enemy, a *TimedAbility) {
	h := bossAbilities[a.Kind]
	if a.Active && h.update != nil {
		h.update(w, e)
	}
	if a.tick() && h.deactivate != nil {
		h.deactivate(w, e)
	}
}

// startBossAbility walks the priority chain and starts the first ability
// that is ready and wins its trigger roll.
func (w *World) startBossAbility(e *Enemy) bool {
	p := &w.Player
	if !p.Alive || absf(p.Pos.X-e.Pos.X) > rangesFor(e.Weapon).patrol {
		return false
	}
	b := e.Boss
	for i := range b.Abilities {
		a := &b.Abilities[i]
		if !a.Ready() || !w.chance(a.Chance) {
			continue
		}
		w.startBossAbilityNow(e, a)
		return true
	}
	return false
}

func (w *World) startBossAbilityNow(e *Enemy, a *TimedAbility) {
	a.start()
	if h := bossAbilities[a.Kind]; h.activate != nil {
		h.activate(w, e)
	}
	logger_config.Debugf("boss %d: %s", e.ID, a.Kind)
}

// damageBoss applies shield overload, berserk and the damage-triggered teleport.
func (w *World) damageBoss(e *Enemy, amount int) {
	b := e.Boss
	if b.shielded() {
		return
	}
	if e.applyDamage(amount, w.Cfg.FlashFrames) {
		w.onEnemyKilled(e)
		logger_config.Infof("boss defeated at frame %d", w.Frame)
		return
	}

	if !b.Berserk && e.HP*2 < e.MaxHP {
		b.Berserk = true
		e.BaseSpeed *= w.Cfg.BossBerserkSpeed
		e.Speed = e.BaseSpeed
		e.AttackCooldownMax = max(1, e.AttackCooldownMax/2)
		logger_config.Infof("boss berserk at hp %d/%d", e.HP, e.MaxHP)
	}

	if b.ActiveAbility() == AbilityNone && b.Teleport.Ready() {
		w.startBossAbilityNow(e, &b.Teleport)
	}
}

// teleportTarget picks a random spot on the main floor inside the walls.
func (w *World) teleportTarget(e *Enemy) Vec2 {
	f, ok := w.Level.MainFloor()
	if !ok {
		return e.Pos
	}
	lo, hi := f.X, f.X+f.W-hitboxSize
	if minX, maxX, ok := w.Level.WallBounds(hitboxSize); ok {
		lo = max(lo, minX)
		hi = min(hi, maxX)
	}
	if hi < lo {
		hi = lo
	}
	return Vec2{X: w.randUniform(lo, hi), Y: f.Y - hitboxSize}
}

// summonMinions queues 2-3 weak enemies around the boss. They join the
// enemy list after the current frame.
func (w *World) summonMinions(e *Enemy) {
	cfg := w.Cfg
	if len(cfg.BossSummonKinds) == 0 {
		return
	}
	n := w.randInt(cfg.BossSummonMin, cfg.BossSummonMax)
	for i := 0; i < n; i++ {
		kind := cfg.BossSummonKinds[w.randIntn(len(cfg.BossSummonKinds))]
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		x := e.Pos.X + side*cfg.BossSummonSpread*float64(i/2+1)
		if minX, maxX, ok := w.Level.WallBounds(hitboxSize); ok {
			x = clamp(x, minX, maxX)
		}
		w.queueSpawn(w.NewEnemy(kind, x, e.Pos.Y))
	}
	logger_config.Infof("boss summoned %d enemies", n)
}

// pullPlayer drags the player toward anchor. The pull is strength/dist,
// capped at dist, and zero outside the well radius.
func (w *World) pullPlayer(anchor Vec2) {
	p := &w.Player
	if !p.Alive {
		return
	}
	cfg := w.Cfg
	to := anchor.Sub(p.Center())
	dist := to.Len()
	if dist <= 0 || dist > cfg.BossWellRadius {
		return
	}
	step := min(cfg.BossWellStrength/dist, dist)
	p.Pos = p.Pos.Add(to.Norm().Mul(step))
	p.clampToWalls(&w.Level)
}
