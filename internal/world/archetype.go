package world

// EnemyKind is the type code used by level spawn tables and the summon ability.
type EnemyKind int

const (
	KindDrone EnemyKind = -1

	KindRobotGuard     EnemyKind = 0
	KindRobotPulse     EnemyKind = 1
	KindRobotJumper    EnemyKind = 2
	KindHumanScout     EnemyKind = 3
	KindHumanRunner    EnemyKind = 4
	KindHumanGrenadier EnemyKind = 5
	KindHumanStalker   EnemyKind = 6
	KindHumanHacker    EnemyKind = 7
	KindBoss           EnemyKind = 9
)

// Archetype is the data-driven description of an enemy configuration.
type Archetype struct {
	Kind        EnemyKind
	Name        string
	HP          int
	MissChance  float64
	Ability     AbilityKind
	AbilitySpec AbilitySpec

	// Weapon is used when RandomWeapon is false.
	Weapon       WeaponKind
	RandomWeapon bool
	LeadsTarget  bool
	Boss         bool

	// SpriteY is the sprite sheet row of the archetype's frames.
	SpriteY int
}

var archetypes = map[EnemyKind]Archetype{
	KindDrone: {
		Kind: KindDrone, Name: "Drone", HP: 10, MissChance: 0.2,
		RandomWeapon: true, SpriteY: 0,
	},
	KindRobotGuard: {
		Kind: KindRobotGuard, Name: "Robot Guard", HP: 30, MissChance: 0.75,
		Ability: AbilityBarrier, AbilitySpec: AbilitySpec{Cooldown: 180, Duration: 120},
		RandomWeapon: true, SpriteY: 16,
	},
	KindRobotPulse: {
		Kind: KindRobotPulse, Name: "Robot Pulse", HP: 35, MissChance: 0.7,
		Ability: AbilityEMP, AbilitySpec: AbilitySpec{Cooldown: 300, Duration: 90},
		RandomWeapon: true, SpriteY: 96,
	},
	KindRobotJumper: {
		Kind: KindRobotJumper, Name: "Robot Jumper", HP: 45, MissChance: 0.4,
		Ability: AbilityRocketJump, AbilitySpec: AbilitySpec{Cooldown: 240, Duration: 30},
		RandomWeapon: true, SpriteY: 112,
	},
	KindHumanScout: {
		Kind: KindHumanScout, Name: "Scout", HP: 20, MissChance: 0.8,
		Ability: AbilityRoll, AbilitySpec: AbilitySpec{Cooldown: 120, Duration: 45},
		RandomWeapon: true, SpriteY: 32,
	},
	KindHumanRunner: {
		Kind: KindHumanRunner, Name: "Runner", HP: 25, MissChance: 0.6,
		Ability: AbilitySprint, AbilitySpec: AbilitySpec{Cooldown: 180, Duration: 90},
		RandomWeapon: true, SpriteY: 48,
	},
	KindHumanGrenadier: {
		Kind: KindHumanGrenadier, Name: "Grenadier", HP: 35, MissChance: 0.3,
		Ability: AbilityGrenade, AbilitySpec: AbilitySpec{Cooldown: 360, Duration: 10},
		RandomWeapon: true, SpriteY: 64,
	},
	KindHumanStalker: {
		Kind: KindHumanStalker, Name: "Stalker", HP: 50, MissChance: 0.1,
		Ability: AbilityCamouflage, AbilitySpec: AbilitySpec{Cooldown: 420, Duration: 150},
		RandomWeapon: true, LeadsTarget: true, SpriteY: 80,
	},
	KindHumanHacker: {
		Kind: KindHumanHacker, Name: "Hacker", HP: 20, MissChance: 0.1,
		RandomWeapon: true, SpriteY: 80,
	},
	KindBoss: {
		Kind: KindBoss, Name: "Overseer", HP: 1000, MissChance: 0.25,
		Weapon: WeaponRifle, LeadsTarget: true, Boss: true, SpriteY: 192,
	},
}

var enemyWeaponChoices = []WeaponKind{WeaponPistol, WeaponRifle, WeaponSniper}

// archetypeFor never fails: unknown codes fall back to the drone.
func archetypeFor(kind EnemyKind) Archetype {
	if a, ok := archetypes[kind]; ok {
		return a
	}
	return archetypes[KindDrone]
}

// aiRanges are the horizontal distance thresholds of the AI state machine.
// Every set satisfies retreat < attackMin <= attackMax < patrol.
type aiRanges struct {
	retreat   float64
	attackMin float64
	attackMax float64
	patrol    float64
}

func rangesFor(weapon WeaponKind) aiRanges {
	switch weapon {
	case WeaponSniper:
		return aiRanges{retreat: 100, attackMin: 120, attackMax: 180, patrol: 200}
	case WeaponRifle:
		return aiRanges{retreat: 32, attackMin: 40, attackMax: 100, patrol: 120}
	default:
		return aiRanges{retreat: 32, attackMin: 40, attackMax: 60, patrol: 100}
	}
}

// ============================================================================
// FACTORY
// ============================================================================

// NewEnemy builds an enemy of the given type code at (x, y). It does not add
// the enemy to the world.
func (w *World) NewEnemy(kind EnemyKind, x, y float64) Enemy {
	cfg := w.Cfg
	arch := archetypeFor(kind)
	speed := cfg.PlayerSpeed * cfg.EnemySpeedFactor

	if w.nextEnemyID < 1 {
		w.nextEnemyID = 1
	}
	e := Enemy{
		Combatant:         newCombatant(w.nextEnemyID, Vec2{X: x, Y: y}, arch.HP, speed),
		Kind:              arch.Kind,
		Name:              arch.Name,
		Weapon:            arch.Weapon,
		BaseSpeed:         speed,
		MissChance:        arch.MissChance,
		LeadsTarget:       arch.LeadsTarget,
		SpriteY:           arch.SpriteY,
		PatrolOrigin:      x,
		AttackCooldownMax: cfg.EnemyAttackCooldown,
		CorpseTimer:       cfg.CorpseFrames,
	}
	w.nextEnemyID++

	if arch.RandomWeapon {
		e.Weapon = enemyWeaponChoices[w.randIntn(len(enemyWeaponChoices))]
	}
	e.PatrolRange = float64(cfg.EnemyPatrolRangeBase + w.randInt(0, cfg.EnemyPatrolRangeRand))
	e.PatrolDir = 1
	if w.randFloat() < 0.5 {
		e.PatrolDir = -1
	}

	if arch.Ability != AbilityNone {
		e.Ability = newTimedAbility(arch.Ability, arch.AbilitySpec)
	}
	if arch.Boss {
		e.Boss = newBossState(cfg)
	}
	return e
}
