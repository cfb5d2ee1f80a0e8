package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

func enemyAt(w *World, kind EnemyKind, x float64, weapon WeaponKind) Enemy {
	e := w.NewEnemy(kind, x, 96)
	e.Weapon = weapon
	return e
}

func TestChaseSwitchesToAttackInsideRange(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 100

	e := enemyAt(w, KindRobotGuard, 145, WeaponPistol)
	e.State = StateChase
	w.runAI(&e)

	assert.Equal(t, StateAttack, e.State)
}

func TestChaseStepsTowardPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 100

	e := enemyAt(w, KindRobotGuard, 170, WeaponPistol)
	e.State = StateChase
	w.runAI(&e)

	assert.Equal(t, StateChase, e.State)
	assert.Less(t, e.Pos.X, 170.0)
	assert.Equal(t, -1, e.Facing)
	assert.True(t, e.IsMoving)
}

func TestAIStateTransitions(t *testing.T) {
	cases := []struct {
		name  string
		from  AIState
		x     float64
		want  AIState
		guard func(t *testing.T, e *Enemy)
	}{
		{name: "patrol spots player", from: StatePatrol, x: 150, want: StateChase},
		{name: "chase too close", from: StateChase, x: 120, want: StateRetreat, guard: func(t *testing.T, e *Enemy) {
			assert.GreaterOrEqual(t, e.RetreatTimer, 30)
			assert.LessOrEqual(t, e.RetreatTimer, 60)
		}},
		{name: "chase loses player", from: StateChase, x: 300, want: StatePatrol},
		{name: "attack too far", from: StateAttack, x: 170, want: StateChase},
		{name: "attack too close", from: StateAttack, x: 110, want: StateRetreat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Player.Pos.X = 100

			e := enemyAt(w, KindHumanHacker, tc.x, WeaponPistol)
			e.State = tc.from
			w.runAI(&e)

			require.Equal(t, tc.want, e.State)
			if tc.guard != nil {
				tc.guard(t, &e)
			}
		})
	}
}

func TestRetreatEndsInPatrol(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 100

	e := enemyAt(w, KindHumanHacker, 130, WeaponPistol)
	e.State = StateRetreat
	e.RetreatTimer = 2

	w.runAI(&e)
	w.runAI(&e)
	require.Equal(t, StateRetreat, e.State)
	assert.Greater(t, e.Pos.X, 130.0)

	w.runAI(&e)
	assert.Equal(t, StatePatrol, e.State)
}

func TestCanStepChecksFloorUnderDestination(t *testing.T) {
	w := newTestWorld(t)
	w.Level.Floors = append(w.Level.Floors, geom.Rect{X: 150, Y: 80, W: 75, H: 8})

	tests := []struct {
		name string
		x, y float64
		dx   float64
		want bool
	}{
		{name: "inside platform", x: 218, y: 64, dx: 1, want: true},
		{name: "last column", x: 223, y: 64, dx: 1.5, want: true},
		{name: "past the edge", x: 224, y: 64, dx: 1, want: false},
		{name: "left edge inclusive", x: 151, y: 64, dx: -1, want: true},
		{name: "off the left edge", x: 150, y: 64, dx: -1, want: false},
		{name: "airborne", x: 200, y: 60, dx: 1, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := w.NewEnemy(KindHumanHacker, tt.x, tt.y)
			assert.Equal(t, tt.want, w.canStep(&e, tt.dx))
		})
	}
}

func TestPatrolTurnsAroundAtRange(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 16

	e := enemyAt(w, KindHumanHacker, 300, WeaponPistol)
	e.PatrolDir = 1
	e.PatrolRange = 2

	for e.PatrolDir == 1 {
		w.runAI(&e)
	}
	assert.Equal(t, -1, e.PatrolDir)
	assert.GreaterOrEqual(t, e.StandTimer, w.Cfg.EnemyStandMin)
	assert.False(t, e.IsMoving)
}

func TestAttackFiresOnCooldown(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 100

	e := enemyAt(w, KindHumanHacker, 145, WeaponPistol)
	e.State = StateAttack
	w.runAI(&e)

	require.Len(t, e.Bullets, 1)
	assert.True(t, e.IsFiring)
	assert.Equal(t, e.AttackCooldownMax, e.AttackCooldown)
	assert.Equal(t, w.Cfg.EnemyPistolDamage, e.Bullets[0].Damage)
	assert.False(t, e.Bullets[0].Penetrate)

	w.runAI(&e)
	assert.Len(t, e.Bullets, 1, "cooldown holds fire")
}

func TestRifleBulletsPierce(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos.X = 100

	e := enemyAt(w, KindHumanHacker, 145, WeaponRifle)
	w.enemyFire(&e)

	require.Len(t, e.Bullets, 1)
	b := e.Bullets[0]
	assert.True(t, b.Penetrate)
	assert.Equal(t, w.Cfg.EnemyRiflePierce, b.PierceLeft)
	assert.Equal(t, w.Cfg.EnemyRifleDamage, b.Damage)
}

func TestSniperLineDamagesPlayerWhileShown(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Pos.X = 100

	e := enemyAt(w, KindHumanHacker, 250, WeaponSniper)
	e.MissChance = 0
	w.enemyFire(&e)
	require.NotNil(t, e.FireLine)

	w.stepEnemyProjectiles(&e)
	assert.Equal(t, p.MaxHP-w.Cfg.EnemySniperDamage, p.HP)
	w.stepEnemyProjectiles(&e)
	assert.Equal(t, p.MaxHP-2*w.Cfg.EnemySniperDamage, p.HP)

	for e.IsFiring {
		e.tickWeapon()
	}
	hp := p.HP
	w.stepEnemyProjectiles(&e)
	assert.Equal(t, hp, p.HP)
}

func TestLeadTarget(t *testing.T) {
	p := &Player{Combatant: newCombatant(0, Vec2{X: 100, Y: 0}, 10, 1)}

	assert.Equal(t, 108.0, leadTarget(p, 8))

	p.VelocityX = 2
	assert.Equal(t, 116.0, leadTarget(p, 8))

	p.VelocityX = 0.5
	assert.Equal(t, 112.0, leadTarget(p, 8))
}

func TestUnknownKindBuildsDrone(t *testing.T) {
	w := newTestWorld(t)

	e := w.NewEnemy(EnemyKind(42), 10, 10)
	assert.Equal(t, KindDrone, e.Kind)
	assert.Equal(t, 10, e.HP)
	assert.Equal(t, AbilityNone, e.Ability.Kind)
	assert.Nil(t, e.Boss)
}

func TestEnemyIDsAreUnique(t *testing.T) {
	w := newTestWorld(t)
	seen := map[int]bool{w.Player.ID: true}
	for range 10 {
		e := w.NewEnemy(KindHumanScout, 0, 0)
		require.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestDefeatedEnemyProjectilesKeepFlying(t *testing.T) {
	w := newTestWorld(t)
	e := enemyAt(w, KindHumanHacker, 300, WeaponPistol)
	e.Bullets = append(e.Bullets, newBullet(Vec2{X: 200, Y: 50}, Vec2{X: -1}, 1, 0))

	w.damageEnemy(&e, 1000)
	require.False(t, e.Alive)
	assert.Equal(t, VisualDefeated, e.Visual)

	w.updateEnemy(&e)
	require.Len(t, e.Bullets, 1)
	assert.Equal(t, 199.0, e.Bullets[0].Pos.X)
	assert.True(t, e.hasProjectiles())
}

// ============================================================================
// SPECIAL ABILITIES
// ============================================================================

func TestTimedAbilityLifecycle(t *testing.T) {
	a := newTimedAbility(AbilityBarrier, AbilitySpec{Cooldown: 5, Duration: 3})
	require.True(t, a.Ready())

	a.start()
	assert.True(t, a.Active)
	assert.False(t, a.Ready())

	assert.False(t, a.tick())
	assert.False(t, a.tick())
	assert.Equal(t, 5, a.Cooldown, "cooldown is frozen while active")
	assert.True(t, a.tick())
	assert.False(t, a.Active)

	for range 4 {
		a.tick()
	}
	assert.False(t, a.Ready())
	a.tick()
	assert.True(t, a.Ready())
}

func TestBarrierCutsDamage(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindRobotGuard, 300, 96)

	w.useSpecial(&e)
	require.True(t, e.Ability.Active)
	assert.Equal(t, e.BaseSpeed*w.Cfg.BarrierSpeedFactor, e.Speed)

	w.damageEnemy(&e, 9)
	assert.Equal(t, 27, e.HP)
	w.damageEnemy(&e, 2)
	assert.Equal(t, 26, e.HP)

	for e.Ability.Active {
		w.updateSpecial(&e)
	}
	assert.Equal(t, e.BaseSpeed, e.Speed)
	w.damageEnemy(&e, 9)
	assert.Equal(t, 17, e.HP)
}

func TestCamouflageEvadesDamage(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindHumanStalker, 300, 96)
	w.useSpecial(&e)
	require.True(t, e.Ability.Active)

	w.Cfg.CamouflageEvade = 1
	w.damageEnemy(&e, 10)
	assert.Equal(t, 50, e.HP)

	w.Cfg.CamouflageEvade = 0
	w.damageEnemy(&e, 10)
	assert.Equal(t, 40, e.HP)
}

func TestEMPPulseDamagesNearbyPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	e := w.NewEnemy(KindRobotPulse, p.Pos.X+20, 96)

	w.useSpecial(&e)
	for range 40 {
		w.updateSpecial(&e)
	}
	assert.Equal(t, p.MaxHP-w.Cfg.EMPPulseFrames*w.Cfg.EMPPulseDamage, p.HP)
}

func TestRollMovesAwayFromPlayer(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindHumanScout, 200, 96)

	w.useSpecial(&e)
	require.Equal(t, 1, e.RollDir)
	w.updateSpecial(&e)
	assert.InDelta(t, 200+e.BaseSpeed*w.Cfg.RollSpeedFactor, e.Pos.X, 1e-9)
}

func TestRocketJumpLaunchesTowardPlayer(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindRobotJumper, 200, 96)

	w.useSpecial(&e)
	assert.Equal(t, w.Cfg.RocketJumpVelocity, e.VelY)
	assert.Equal(t, 200-w.Cfg.RocketJumpBoost, e.Pos.X)
}

func TestGrenadierThrowsOnActivation(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindHumanGrenadier, 200, 96)

	w.useSpecial(&e)
	require.Len(t, e.Grenades, 1)
	g := e.Grenades[0]
	assert.False(t, g.Homing)
	assert.Equal(t, w.Cfg.GrenadeTimer, g.Timer)
	assert.Less(t, g.Vel.X, 0.0)
}

func TestSprintDoublesSpeedUntilExpiry(t *testing.T) {
	w := newTestWorld(t)
	e := w.NewEnemy(KindHumanRunner, 200, 96)

	w.useSpecial(&e)
	assert.Equal(t, e.BaseSpeed*w.Cfg.SprintSpeedFactor, e.Speed)
	for range e.Ability.Duration {
		w.updateSpecial(&e)
	}
	assert.False(t, e.Ability.Active)
	assert.Equal(t, e.BaseSpeed, e.Speed)
}
