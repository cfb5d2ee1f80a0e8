package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyBao/Neurotrace/internal/level"
	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

func fireAt(x, y float64) input.State {
	return input.State{}.Press(input.Fire).Aim(x, y)
}

func TestFireWithEmptyMagazineDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Ammo[p.Current] = 0

	w.Enqueue(MsgInput{Input: fireAt(200, 104)})
	w.Tick()

	assert.Empty(t, p.Bullets)
	assert.False(t, p.IsFiring)
	assert.Zero(t, w.Stats.ShotsFired)
}

func TestPistolFiresOneBullet(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.Enqueue(MsgInput{Input: fireAt(200, 104)})
	w.Tick()

	require.Len(t, p.Bullets, 1)
	assert.True(t, p.IsFiring)
	assert.Equal(t, p.Loadout[0].MaxAmmo-1, p.Ammo[0])
	assert.Greater(t, p.Bullets[0].Vel.X, 0.0)

	w.Enqueue(MsgInput{Input: fireAt(200, 104)})
	w.Tick()
	assert.Equal(t, p.Loadout[0].MaxAmmo-1, p.Ammo[0], "no refire while the shot is shown")
}

func TestRifleBurst(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Current = 1
	slot := p.Slot()
	aim := input.State{}.Aim(200, 104)

	w.playerFire(200, 104)
	require.Len(t, p.Bullets, 1)
	require.Equal(t, slot.Burst-1, p.BurstLeft)

	for range slot.BurstDelay * (slot.Burst - 1) {
		w.updateWeapons(aim)
	}
	assert.Len(t, p.Bullets, slot.Burst)
	assert.Equal(t, slot.MaxAmmo-slot.Burst, p.Ammo[1])
	assert.Zero(t, p.BurstLeft)
	for _, b := range p.Bullets {
		assert.True(t, b.Penetrate)
	}
}

func TestRifleBurstHaltsWhenDry(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Current = 1
	p.Ammo[1] = 2
	slot := p.Slot()
	aim := input.State{}.Aim(200, 104)

	w.playerFire(200, 104)
	for range slot.BurstDelay * slot.Burst {
		w.updateWeapons(aim)
	}
	assert.Len(t, p.Bullets, 2)
	assert.Zero(t, p.Ammo[1])
	assert.Zero(t, p.BurstLeft)
}

func TestSwitchingCancelsBurst(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Current = 1

	w.playerFire(200, 104)
	w.updateWeapons(input.State{}.Press(input.WeaponNext))
	assert.Equal(t, 2, p.Current)
	assert.Zero(t, p.BurstLeft)
}

func TestWeaponSwitchWraps(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.switchWeapon(-1)
	assert.Equal(t, len(p.Loadout)-1, p.Current)
	w.switchWeapon(1)
	assert.Equal(t, 0, p.Current)
}

func TestReload(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.startReload()
	assert.False(t, p.Reloading, "full magazine does not reload")

	p.Ammo[0] = 3
	w.startReload()
	require.True(t, p.Reloading)

	w.playerFire(200, 104)
	assert.Empty(t, p.Bullets, "no firing while reloading")

	w.switchWeapon(1)
	for range w.Cfg.PlayerReloadFrames - 1 {
		w.updateWeapons(input.State{})
	}
	require.True(t, p.Reloading)
	assert.Equal(t, 3, p.Ammo[0])

	w.updateWeapons(input.State{})
	assert.False(t, p.Reloading)
	assert.Equal(t, p.Loadout[0].MaxAmmo, p.Ammo[0], "refill lands on the slot that started reloading")
	assert.Equal(t, 1, p.Current)
}

func TestSniperLineDamagesEnemiesWhileShown(t *testing.T) {
	w := newTestWorld(t, level.Spawn{Type: int(KindHumanHacker), X: 200, Y: 96})
	p := &w.Player
	p.Current = 2
	e := &w.Enemies[0]

	w.playerFire(208, 104)
	require.NotNil(t, p.FireLine)
	assert.Equal(t, p.Loadout[2].MaxAmmo-1, p.Ammo[2])

	w.resolvePlayerProjectiles()
	w.resolvePlayerProjectiles()
	assert.Equal(t, e.MaxHP-2*p.Loadout[2].Damage, e.HP)
}

func TestShieldHalvesDamageRoundingUp(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Shielding = true

	w.damagePlayer(10)
	assert.Equal(t, p.MaxHP-5, p.HP)

	w.damagePlayer(7)
	assert.Equal(t, p.MaxHP-9, p.HP)
	assert.Equal(t, 9, w.Stats.DamageTaken)
}

func TestPlayerDeathClampsHealth(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.damagePlayer(p.MaxHP + 50)
	assert.Zero(t, p.HP)
	assert.False(t, p.Alive)
	assert.Equal(t, VisualDefeated, p.Visual)

	w.damagePlayer(5)
	assert.Zero(t, p.HP)
}

func TestShieldStaminaCycle(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	cfg := w.Cfg
	hold := input.State{}.Hold(input.Shield)

	frames := int(cfg.PlayerStaminaMax / cfg.PlayerStaminaDrain)
	for range frames - 1 {
		w.updateShield(hold)
	}
	require.True(t, p.Shielding)

	w.updateShield(hold)
	assert.False(t, p.Shielding)
	assert.Zero(t, p.Stamina)
	assert.Equal(t, cfg.PlayerShieldCooldown, p.ShieldCooldown)

	w.updateShield(hold)
	assert.False(t, p.Shielding, "exhausted shield stays down")

	for range cfg.PlayerShieldCooldown {
		w.updateShield(input.State{})
	}
	assert.Zero(t, p.ShieldCooldown)
	assert.Equal(t, cfg.PlayerStaminaRegen, p.Stamina)
}

func TestShieldSlowsMovement(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.Shielding = true

	w.updateMovement(input.State{}.Hold(input.MoveRight))
	assert.Equal(t, 16+w.Cfg.PlayerShieldSpeed, p.Pos.X)
}

func TestDashCoversFixedDistance(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	cfg := w.Cfg

	w.updateMovement(input.State{}.Press(input.Dash))
	require.True(t, p.Dashing)
	for p.Dashing {
		w.updateMovement(input.State{})
	}
	assert.Equal(t, 16+cfg.PlayerDashDistance, p.Pos.X)
	assert.Equal(t, cfg.PlayerDashCooldown, p.DashCooldown)

	w.updateMovement(input.State{}.Press(input.Dash))
	assert.False(t, p.Dashing, "dash is on cooldown")
}

func TestJumpOnlyFromGround(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.updateMovement(input.State{}.Press(input.Jump))
	assert.Equal(t, w.Cfg.PlayerJumpSpeed, p.VelY)
	require.True(t, p.IsJumping)

	p.VelY = 1
	w.updateMovement(input.State{}.Press(input.Jump))
	assert.Equal(t, 1.0, p.VelY)
}

func TestMedkit(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	press := input.State{}.Press(input.Medkit)

	w.useMedkit(press)
	assert.Equal(t, w.Cfg.PlayerMedkits, p.Medkits, "not used at full health")

	p.HP = 50
	w.useMedkit(press)
	assert.Equal(t, 50+w.Cfg.PlayerMedkitHeal, p.HP)
	assert.Equal(t, w.Cfg.PlayerMedkits-1, p.Medkits)

	p.HP = p.MaxHP - 1
	w.useMedkit(press)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestEMPBlocksWeaponsAndMedkit(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player
	p.HP = 50
	p.Shielding = true
	p.applyEMP(10)
	assert.False(t, p.Shielding)

	w.updateWeapons(fireAt(200, 104))
	assert.Empty(t, p.Bullets)

	w.useMedkit(input.State{}.Press(input.Medkit))
	assert.Equal(t, 50, p.HP)

	w.updateShield(input.State{}.Hold(input.Shield))
	assert.False(t, p.Shielding)

	p.EMPTimer = 0
	w.updateWeapons(fireAt(200, 104))
	assert.Len(t, p.Bullets, 1)
}

func TestVelocityXTracksMovement(t *testing.T) {
	w := newTestWorld(t)
	p := &w.Player

	w.updatePlayer(input.State{}.Hold(input.MoveRight))
	assert.InDelta(t, w.Cfg.PlayerSpeed, p.VelocityX, 1e-9)

	w.updatePlayer(input.State{})
	assert.Zero(t, p.VelocityX)
}
