package world

// AbilityKind tags every special ability, regular and boss.
type AbilityKind int

const (
	AbilityNone AbilityKind = iota

	AbilityBarrier
	AbilityEMP
	AbilityRocketJump
	AbilityRoll
	AbilitySprint
	AbilityGrenade
	AbilityCamouflage

	AbilityTeleport
	AbilityGrenadeBarrage
	AbilitySummon
	AbilityShieldOverload
	AbilityEMPWave
	AbilityGravityWell
)

var abilityNames = map[AbilityKind]string{
	AbilityNone:           "none",
	AbilityBarrier:        "barrier",
	AbilityEMP:            "emp",
	AbilityRocketJump:     "rocket_jump",
	AbilityRoll:           "roll",
	AbilitySprint:         "sprint",
	AbilityGrenade:        "grenade",
	AbilityCamouflage:     "camouflage",
	AbilityTeleport:       "teleport",
	AbilityGrenadeBarrage: "grenade_barrage",
	AbilitySummon:         "summon",
	AbilityShieldOverload: "shield_overload",
	AbilityEMPWave:        "emp_wave",
	AbilityGravityWell:    "gravity_well",
}

func (k AbilityKind) String() string {
	if n, ok := abilityNames[k]; ok {
		return n
	}
	return "unknown"
}

// TimedAbility is the uniform cooldown/duration record of one ability.
// The cooldown only counts down while the ability is not active.
type TimedAbility struct {
	Kind        AbilityKind
	Cooldown    int
	CooldownMax int
	Active      bool
	Timer       int
	Duration    int
	Chance      float64
}

func newTimedAbility(kind AbilityKind, spec AbilitySpec) TimedAbility {
	return TimedAbility{
		Kind:        kind,
		CooldownMax: spec.Cooldown,
		Duration:    spec.Duration,
		Chance:      spec.Chance,
	}
}

func (a *TimedAbility) Ready() bool {
	return a.Kind != AbilityNone && !a.Active && a.Cooldown <= 0
}

func (a *TimedAbility) start() {
	a.Active = true
	a.Timer = a.Duration
	a.Cooldown = a.CooldownMax
}

// tick advances one frame and reports whether the active window just ended.
func (a *TimedAbility) tick() bool {
	if a.Active {
		a.Timer--
		if a.Timer <= 0 {
			a.Timer = 0
			a.Active = false
			return true
		}
		return false
	}
	if a.Cooldown > 0 {
		a.Cooldown--
	}
	return false
}

// elapsed is the 1-based frame index inside the active window.
func (a *TimedAbility) elapsed() int {
	return a.Duration - a.Timer + 1
}

func (a *TimedAbility) atMidpoint() bool {
	return a.Active && a.Timer == a.Duration/2
}

// abilityHooks are the effect functions of one ability kind. Any hook may be nil.
type abilityHooks struct {
	activate   func(w *World, e *Enemy)
	update     func(w *World, e *Enemy)
	deactivate func(w *World, e *Enemy)
}

// ============================================================================
// REGULAR ENEMY ABILITIES
// ============================================================================

var enemyAbilities = map[AbilityKind]abilityHooks{
	AbilityBarrier: {
		activate: func(w *World, e *Enemy) {
			e.Speed = e.BaseSpeed * w.Cfg.BarrierSpeedFactor
		},
		deactivate: restoreSpeed,
	},
	AbilityEMP: {
		activate: func(w *World, e *Enemy) {
			e.PulseTimer = w.Cfg.EMPPulseFrames
		},
		update: func(w *World, e *Enemy) {
			if e.PulseTimer <= 0 {
				return
			}
			e.PulseTimer--
			p := &w.Player
			if p.Alive && absf(p.Pos.X-e.Pos.X) <= w.Cfg.EMPPulseRange {
				w.damagePlayer(w.Cfg.EMPPulseDamage)
			}
		},
		deactivate: func(w *World, e *Enemy) {
			e.PulseTimer = 0
		},
	},
	AbilityRocketJump: {
		activate: func(w *World, e *Enemy) {
			dir := 1
			if w.Player.Pos.X <= e.Pos.X {
				dir = -1
			}
			e.VelY = w.Cfg.RocketJumpVelocity
			e.Pos.X += float64(dir) * w.Cfg.RocketJumpBoost
			e.Facing = dir
		},
	},
	AbilityRoll: {
		activate: func(w *World, e *Enemy) {
			e.Speed = e.BaseSpeed * w.Cfg.RollSpeedFactor
			e.RollDir = -1
			if w.Player.Pos.X <= e.Pos.X {
				e.RollDir = 1
			}
			e.Facing = e.RollDir
		},
		update: func(w *World, e *Enemy) {
			e.Pos.X += float64(e.RollDir) * e.Speed
		},
		deactivate: restoreSpeed,
	},
	AbilitySprint: {
		activate: func(w *World, e *Enemy) {
			e.Speed = e.BaseSpeed * w.Cfg.SprintSpeedFactor
		},
		deactivate: restoreSpeed,
	},
	AbilityGrenade: {
		activate: func(w *World, e *Enemy) {
			w.throwGrenade(e, w.Player.Center())
		},
	},
	// camouflage is passive: damageEnemy checks it while active
	AbilityCamouflage: {},
}

func restoreSpeed(w *World, e *Enemy) {
	e.Speed = e.BaseSpeed
}

// useSpecial starts the enemy's ability when it is off cooldown.
func (w *World) useSpecial(e *Enemy) {
	a := &e.Ability
	if !a.Ready() {
		return
	}
	a.start()
	if h := enemyAbilities[a.Kind]; h.activate != nil {
		h.activate(w, e)
	}
}

func (w *World) updateSpecial(e *Enemy) {
	a := &e.Ability
	if a.Kind == AbilityNone {
		return
	}
	h := enemyAbilities[a.Kind]
	if a.Active && h.update != nil {
		h.update(w, e)
	}
	if a.tick() && h.deactivate != nil {
		h.deactivate(w, e)
	}
}
