package world

import (
	"math"

	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

type Player struct {
	Combatant

	// VelocityX is the horizontal displacement of the last frame. Enemies
	// that lead their shots read it.
	VelocityX float64

	// weapons
	Loadout     []WeaponSlot
	Current     int
	Ammo        []int
	Reloading   bool
	ReloadTimer int
	ReloadSlot  int

	IsFiring   bool
	FireTimer  int
	FireAngle  float64
	FireLine   *geom.Segment
	LineDamage int
	BurstLeft  int
	BurstTimer int

	Bullets []Bullet

	// dash
	Dashing      bool
	DashDir      int
	DashLeft     float64
	DashCooldown int

	// shield
	Shielding      bool
	Stamina        float64
	ShieldCooldown int

	Medkits  int
	EMPTimer int
}

func newPlayer(cfg Config, spawn Vec2) Player {
	loadout := append([]WeaponSlot(nil), cfg.PlayerWeapons...)
	if len(loadout) == 0 {
		loadout = defaultLoadout()
	}
	ammo := make([]int, len(loadout))
	for i, s := range loadout {
		ammo[i] = s.MaxAmmo
	}
	return Player{
		Combatant: newCombatant(0, spawn, cfg.PlayerMaxHealth, cfg.PlayerSpeed),
		Loadout:   loadout,
		Ammo:      ammo,
		Stamina:   cfg.PlayerStaminaMax,
		Medkits:   cfg.PlayerMedkits,
	}
}

// placeAt moves the player to a level's spawn point without touching
// health, ammo or inventory.
func (p *Player) placeAt(spawn Vec2) {
	p.Pos = spawn
	p.VelY = 0
	p.VelocityX = 0
	p.Dashing = false
	p.IsFiring = false
	p.FireLine = nil
	p.BurstLeft = 0
	p.Bullets = p.Bullets[:0]
}

// applyEMP disables weapons, medkits and the shield for frames.
func (p *Player) applyEMP(frames int) {
	p.EMPTimer = max(p.EMPTimer, frames)
	p.Shielding = false
	p.BurstLeft = 0
}

func (p *Player) Slot() WeaponSlot {
	return p.Loadout[p.Current]
}

// ============================================================================
// DAMAGE
// ============================================================================

// damagePlayer is the single damage entry point for the player. The shield
// halves incoming damage, rounded up.
func (w *World) damagePlayer(amount int) {
	p := &w.Player
	if !p.Alive || amount <= 0 {
		return
	}
	if p.Shielding {
		amount = ceilHalf(amount)
	}

	before := p.HP
	killed := p.applyDamage(amount, w.Cfg.FlashFrames)
	w.Stats.DamageTaken += before - p.HP
	if killed {
		p.IsFiring = false
		p.FireLine = nil
		p.BurstLeft = 0
		p.Shielding = false
		logger_config.Infof("player defeated at frame %d (level %d)", w.Frame, w.LevelIndex)
	}
}

// ============================================================================
// UPDATE
// ============================================================================

func (w *World) updatePlayer(in input.State) {
	p := &w.Player
	if !p.Alive {
		return
	}
	cfg := w.Cfg

	p.tickVisual()
	if p.EMPTimer > 0 {
		p.EMPTimer--
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}

	startX := p.Pos.X
	w.updateShield(in)
	w.updateMovement(in)

	p.applyGravity(cfg.Gravity)
	p.clampToWalls(&w.Level)
	p.clampToMapHeight(&w.Level)
	p.resolveFloors(&w.Level, cfg.FloorTolerance)
	p.VelocityX = p.Pos.X - startX

	w.updateWeapons(in)
	w.useMedkit(in)
}

func (w *World) updateMovement(in input.State) {
	p := &w.Player
	cfg := w.Cfg
	p.IsMoving = false

	if in.JustPressed(input.Dash) && !p.Dashing && p.DashCooldown <= 0 {
		p.Dashing = true
		p.DashDir = p.Facing
		p.DashLeft = cfg.PlayerDashDistance
		p.DashCooldown = cfg.PlayerDashCooldown
	}

	if p.Dashing {
		step := math.Min(cfg.PlayerDashSpeed, p.DashLeft)
		p.Pos.X += float64(p.DashDir) * step
		p.DashLeft -= step
		p.IsMoving = true
		if p.DashLeft <= 0 {
			p.Dashing = false
			p.DashLeft = 0
		}
	} else {
		speed := p.Speed
		if p.Shielding {
			speed = cfg.PlayerShieldSpeed
		}
		if in.IsHeld(input.MoveLeft) {
			p.Pos.X -= speed
			p.Facing = -1
			p.IsMoving = true
		}
		if in.IsHeld(input.MoveRight) {
			p.Pos.X += speed
			p.Facing = 1
			p.IsMoving = true
		}
	}

	if in.JustPressed(input.Jump) && !p.IsJumping {
		p.VelY = cfg.PlayerJumpSpeed
		p.IsJumping = true
	}
}

// updateShield drains stamina while the shield is held. Running dry forces
// a cooldown before stamina regenerates.
func (w *World) updateShield(in input.State) {
	p := &w.Player
	cfg := w.Cfg

	if in.IsHeld(input.Shield) && p.EMPTimer <= 0 && p.ShieldCooldown <= 0 && p.Stamina > 0 {
		p.Shielding = true
		p.Stamina -= cfg.PlayerStaminaDrain
		if p.Stamina <= 0 {
			p.Stamina = 0
			p.Shielding = false
			p.ShieldCooldown = cfg.PlayerShieldCooldown
		}
		return
	}

	p.Shielding = false
	if p.ShieldCooldown > 0 {
		p.ShieldCooldown--
		return
	}
	p.Stamina = math.Min(cfg.PlayerStaminaMax, p.Stamina+cfg.PlayerStaminaRegen)
}

func (w *World) useMedkit(in input.State) {
	p := &w.Player
	if !in.JustPressed(input.Medkit) || p.EMPTimer > 0 {
		return
	}
	if p.Medkits <= 0 || p.HP >= p.MaxHP {
		return
	}
	p.HP = min(p.MaxHP, p.HP+w.Cfg.PlayerMedkitHeal)
	p.Medkits--
}
