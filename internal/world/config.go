package world

// Config holds every tunable of the simulation. All timings are in frames.
type Config struct {
	// World / pacing
	Gravity        float64
	FloorTolerance float64
	FlashFrames    int
	CorpseFrames   int

	// Camera
	ScreenWidth     float64
	CameraDeadzone  float64
	CameraSmoothing float64

	// Player
	PlayerSpeed        float64
	PlayerShieldSpeed  float64
	PlayerJumpSpeed    float64
	PlayerMaxHealth    int
	PlayerFireDuration int

	PlayerDashDistance float64
	PlayerDashSpeed    float64
	PlayerDashCooldown int

	PlayerStaminaMax     float64
	PlayerStaminaDrain   float64
	PlayerStaminaRegen   float64
	PlayerShieldCooldown int

	PlayerMedkits    int
	PlayerMedkitHeal int

	PlayerReloadFrames int
	PlayerWeapons      []WeaponSlot

	// Enemy (shared by every archetype)
	EnemySpeedFactor     float64
	EnemyAttackCooldown  int
	EnemyFireDuration    int
	EnemySpecialChance   float64
	EnemyMissSpread      float64
	EnemyPatrolRangeBase int
	EnemyPatrolRangeRand int
	EnemyStandMin        int
	EnemyStandMax        int
	EnemyRetreatMin      int
	EnemyRetreatMax      int
	EnemyLeadDistance    float64

	EnemyPistolSpeed  float64
	EnemyPistolDamage int
	EnemyRifleSpeed   float64
	EnemyRifleDamage  int
	EnemyRiflePierce  int
	EnemySniperDamage int

	// Hit line ray march
	HitLineStep      float64
	HitLineMaxLength float64
	MuzzleOffset     float64

	// Regular enemy special abilities
	BarrierSpeedFactor float64
	EMPPulseFrames     int
	EMPPulseRange      float64
	EMPPulseDamage     int
	RocketJumpVelocity float64
	RocketJumpBoost    float64
	RollSpeedFactor    float64
	SprintSpeedFactor  float64
	CamouflageEvade    float64

	// Grenades
	GrenadeGravity     float64
	GrenadeTimer       int
	GrenadeSpeed       float64
	GrenadeSpeedJitter float64
	GrenadeLift        float64
	GrenadeRadius      float64
	GrenadeDamage      int
	HomingTimer        int
	HomingMaxSpeed     float64
	HomingSteer        float64
	HomingStrikeDist   float64
	HomingStrikeDamage int
	HomingLaunchSpeed  float64
	BarrageEvery       int

	// Boss
	BossBerserkSpeed float64
	BossEMPRadius    float64
	BossEMPDamage    int
	BossEMPDebuff    int
	BossWellRadius   float64
	BossWellStrength float64
	BossWellOffset   float64
	BossSummonMin    int
	BossSummonMax    int
	BossSummonSpread float64
	BossAbilities    map[AbilityKind]AbilitySpec
	BossSummonKinds  []EnemyKind
}

// AbilitySpec is the static part of a TimedAbility.
type AbilitySpec struct {
	Cooldown int
	Duration int
	Chance   float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:        0.25,
		FloorTolerance: 5,
		FlashFrames:    10,
		CorpseFrames:   60,

		ScreenWidth:     128,
		CameraDeadzone:  16,
		CameraSmoothing: 0.1,

		PlayerSpeed:        1.2,
		PlayerShieldSpeed:  0.3,
		PlayerJumpSpeed:    -4,
		PlayerMaxHealth:    100,
		PlayerFireDuration: 6,

		PlayerDashDistance: 32,
		PlayerDashSpeed:    4,
		PlayerDashCooldown: 45,

		PlayerStaminaMax:     120,
		PlayerStaminaDrain:   1,
		PlayerStaminaRegen:   0.5,
		PlayerShieldCooldown: 180,

		PlayerMedkits:    3,
		PlayerMedkitHeal: 30,

		PlayerReloadFrames: 90,
		PlayerWeapons:      defaultLoadout(),

		EnemySpeedFactor:     0.8,
		EnemyAttackCooldown:  60,
		EnemyFireDuration:    6,
		EnemySpecialChance:   0.1,
		EnemyMissSpread:      0.4,
		EnemyPatrolRangeBase: 32,
		EnemyPatrolRangeRand: 32,
		EnemyStandMin:        30,
		EnemyStandMax:        90,
		EnemyRetreatMin:      30,
		EnemyRetreatMax:      60,
		EnemyLeadDistance:    8,

		EnemyPistolSpeed:  5,
		EnemyPistolDamage: 1,
		EnemyRifleSpeed:   8,
		EnemyRifleDamage:  2,
		EnemyRiflePierce:  2,
		EnemySniperDamage: 5,

		HitLineStep:      2,
		HitLineMaxLength: 2560,
		MuzzleOffset:     8,

		BarrierSpeedFactor: 0.5,
		EMPPulseFrames:     30,
		EMPPulseRange:      48,
		EMPPulseDamage:     1,
		RocketJumpVelocity: -8,
		RocketJumpBoost:    16,
		RollSpeedFactor:    2.5,
		SprintSpeedFactor:  2.0,
		CamouflageEvade:    0.8,

		GrenadeGravity:     0.1,
		GrenadeTimer:       120,
		GrenadeSpeed:       2.0,
		GrenadeSpeedJitter: 0.5,
		GrenadeLift:        1.0,
		GrenadeRadius:      24,
		GrenadeDamage:      3,
		HomingTimer:        150,
		HomingMaxSpeed:     2.5,
		HomingSteer:        0.15,
		HomingStrikeDist:   8,
		HomingStrikeDamage: 6,
		HomingLaunchSpeed:  1.5,
		BarrageEvery:       20,

		BossBerserkSpeed: 1.7,
		BossEMPRadius:    64,
		BossEMPDamage:    4,
		BossEMPDebuff:    180,
		BossWellRadius:   80,
		BossWellStrength: 24,
		BossWellOffset:   32,
		BossSummonMin:    2,
		BossSummonMax:    3,
		BossSummonSpread: 24,
		BossAbilities: map[AbilityKind]AbilitySpec{
			AbilityTeleport:       {Cooldown: 240, Duration: 40},
			AbilityGrenadeBarrage: {Cooldown: 420, Duration: 60, Chance: 0.02},
			AbilitySummon:         {Cooldown: 900, Duration: 60, Chance: 0.01},
			AbilityShieldOverload: {Cooldown: 600, Duration: 120, Chance: 0.015},
			AbilityEMPWave:        {Cooldown: 480, Duration: 60, Chance: 0.015},
			AbilityGravityWell:    {Cooldown: 540, Duration: 120, Chance: 0.015},
		},
		BossSummonKinds: []EnemyKind{KindHumanScout, KindHumanRunner, KindDrone},
	}
}

func defaultLoadout() []WeaponSlot {
	return []WeaponSlot{
		{Kind: WeaponPistol, Name: "Pistol", Speed: 5, Damage: 5, MaxAmmo: 12, Color: 0},
		{Kind: WeaponRifle, Name: "Rifle", Speed: 8, Damage: 4, MaxAmmo: 30, Color: 12,
			Penetrate: true, Burst: 3, BurstDelay: 5},
		{Kind: WeaponSniper, Name: "Sniper", Damage: 6, MaxAmmo: 5, Color: 8},
	}
}
