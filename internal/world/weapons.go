package world

import (
	"math"

	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

// WeaponSlot is one entry of the player's loadout.
type WeaponSlot struct {
	Kind    WeaponKind
	Name    string
	Speed   float64 // projectile speed; unused by hit-line weapons
	Damage  int
	MaxAmmo int
	Color   int

	Penetrate bool
	Pierce    int // hit budget of a penetrating bullet, <= 0 for unlimited

	// Burst fires this many rounds per trigger pull, BurstDelay frames apart.
	Burst      int
	BurstDelay int
}

// hitLine reports whether the slot fires an instant line instead of bullets.
func (s WeaponSlot) hitLine() bool {
	return s.Kind == WeaponSniper
}

// updateWeapons runs timers first, then the frame's weapon input. An EMP
// blocks switching, reloading and firing.
func (w *World) updateWeapons(in input.State) {
	p := &w.Player

	if p.IsFiring {
		p.FireTimer--
		if p.FireTimer <= 0 {
			p.IsFiring = false
			p.FireLine = nil
		}
	}
	if p.Reloading {
		p.ReloadTimer--
		if p.ReloadTimer <= 0 {
			p.Reloading = false
			p.ReloadTimer = 0
			p.Ammo[p.ReloadSlot] = p.Loadout[p.ReloadSlot].MaxAmmo
		}
	}
	w.continueBurst(in)

	if p.EMPTimer > 0 {
		return
	}
	if in.JustPressed(input.WeaponPrev) {
		w.switchWeapon(-1)
	}
	if in.JustPressed(input.WeaponNext) {
		w.switchWeapon(1)
	}
	if in.JustPressed(input.Reload) {
		w.startReload()
	}
	if in.JustPressed(input.Fire) {
		w.playerFire(in.AimX, in.AimY)
	}
}

func (w *World) switchWeapon(delta int) {
	p := &w.Player
	n := len(p.Loadout)
	if n == 0 {
		return
	}
	p.Current = ((p.Current+delta)%n + n) % n
	p.BurstLeft = 0
}

// startReload refills the current slot after the reload delay. The refill
// lands on the slot the reload started on even if the player switches.
func (w *World) startReload() {
	p := &w.Player
	if p.Reloading || p.Ammo[p.Current] >= p.Slot().MaxAmmo {
		return
	}
	p.Reloading = true
	p.ReloadTimer = w.Cfg.PlayerReloadFrames
	p.ReloadSlot = p.Current
	p.BurstLeft = 0
}

// playerFire is a no-op while reloading, while a shot or burst is still in
// progress, or when the current slot is empty.
func (w *World) playerFire(aimX, aimY float64) {
	p := &w.Player
	if p.Reloading || p.IsFiring || p.BurstLeft > 0 {
		return
	}
	if p.Ammo[p.Current] <= 0 {
		return
	}

	slot := p.Slot()
	angle := p.aimAngle(aimX, aimY)
	p.IsFiring = true
	p.FireTimer = w.Cfg.PlayerFireDuration
	p.FireAngle = angle

	if slot.hitLine() {
		line := w.castHitLine(p.Center(), angle)
		p.FireLine = &line
		p.LineDamage = slot.Damage
		p.Ammo[p.Current]--
		w.Stats.ShotsFired++
		return
	}

	w.fireRound(slot, angle)
	if slot.Burst > 1 {
		p.BurstLeft = slot.Burst - 1
		p.BurstTimer = slot.BurstDelay
	}
}

// continueBurst fires the remaining rounds of a burst. A burst stops when
// the slot runs dry.
func (w *World) continueBurst(in input.State) {
	p := &w.Player
	if p.BurstLeft <= 0 {
		return
	}
	p.BurstTimer--
	if p.BurstTimer > 0 {
		return
	}
	if p.Reloading || p.Ammo[p.Current] <= 0 {
		p.BurstLeft = 0
		return
	}

	slot := p.Slot()
	angle := p.aimAngle(in.AimX, in.AimY)
	p.FireAngle = angle
	w.fireRound(slot, angle)
	p.BurstLeft--
	if p.BurstLeft > 0 {
		p.BurstTimer = slot.BurstDelay
	}
}

// fireRound spawns one bullet and spends one round. Callers check ammo.
func (w *World) fireRound(slot WeaponSlot, angle float64) {
	p := &w.Player
	from := p.Center()
	vel := Vec2{X: math.Cos(angle) * slot.Speed, Y: math.Sin(angle) * slot.Speed}

	b := newBullet(from.Add(vel.Mul(2)), vel, slot.Damage, slot.Color)
	if slot.Penetrate {
		b.setPierce(slot.Pierce)
	}
	p.Bullets = append(p.Bullets, b)
	p.Ammo[p.Current]--
	w.Stats.ShotsFired++
}

// aimAngle points from the player's center to the aim point. An aim point
// on the center falls back to the facing direction.
func (p *Player) aimAngle(aimX, aimY float64) float64 {
	c := p.Center()
	dx, dy := aimX-c.X, aimY-c.Y
	if dx == 0 && dy == 0 {
		if p.Facing < 0 {
			return math.Pi
		}
		return 0
	}
	return math.Atan2(dy, dx)
}
