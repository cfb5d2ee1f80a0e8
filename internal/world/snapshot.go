package world

import (
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

// View is a copy of everything a renderer needs for one frame. It shares no
// memory with the world.
type View struct {
	Frame      uint64      `json:"frame"`
	Level      int         `json:"level"`
	LevelName  string      `json:"level_name"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Floors     []geom.Rect `json:"floors"`
	Walls      []geom.Rect `json:"walls"`
	Portal     *geom.Rect  `json:"portal,omitempty"`
	PortalOpen bool        `json:"portal_open"`
	CameraX    float64     `json:"camera_x"`

	GameOver bool  `json:"game_over"`
	Paused   bool  `json:"paused"`
	Stats    Stats `json:"stats"`

	Player   PlayerView     `json:"player"`
	Enemies  []EnemyView    `json:"enemies"`
	Bullets  []BulletView   `json:"bullets"`
	Grenades []GrenadeView  `json:"grenades"`
	HitLines []geom.Segment `json:"hit_lines"`
}

type PlayerView struct {
	Pos       Vec2        `json:"pos"`
	Facing    int         `json:"facing"`
	Visual    VisualState `json:"visual"`
	Moving    bool        `json:"moving"`
	Jumping   bool        `json:"jumping"`
	Firing    bool        `json:"firing"`
	FireAngle float64     `json:"fire_angle"`

	HP      int     `json:"hp"`
	MaxHP   int     `json:"max_hp"`
	Health  float64 `json:"health"`
	Medkits int     `json:"medkits"`

	Weapon     string  `json:"weapon"`
	Ammo       int     `json:"ammo"`
	MaxAmmo    int     `json:"max_ammo"`
	Reloading  bool    `json:"reloading"`
	ReloadFrac float64 `json:"reload_frac"`

	Shielding bool    `json:"shielding"`
	Stamina   float64 `json:"stamina"`
	Dashing   bool    `json:"dashing"`
	DashReady float64 `json:"dash_ready"`
	EMP       float64 `json:"emp"`
}

type EnemyView struct {
	ID      int         `json:"id"`
	Kind    EnemyKind   `json:"kind"`
	Name    string      `json:"name"`
	Pos     Vec2        `json:"pos"`
	Facing  int         `json:"facing"`
	Visual  VisualState `json:"visual"`
	State   AIState     `json:"state"`
	Moving  bool        `json:"moving"`
	Jumping bool        `json:"jumping"`
	Firing  bool        `json:"firing"`
	SpriteY int         `json:"sprite_y"`
	Health  float64     `json:"health"`

	Ability       AbilityKind `json:"ability"`
	AbilityActive bool        `json:"ability_active"`

	Boss       bool    `json:"boss"`
	Berserk    bool    `json:"berserk,omitempty"`
	Flashing   bool    `json:"flashing,omitempty"`
	EMPRadius  float64 `json:"emp_radius,omitempty"`
	WellAnchor *Vec2   `json:"well_anchor,omitempty"`
}

type BulletView struct {
	Pos   Vec2 `json:"pos"`
	Color int  `json:"color"`
	Enemy bool `json:"enemy"`
}

type GrenadeView struct {
	Pos    Vec2 `json:"pos"`
	Homing bool `json:"homing"`
}

func (w *World) View() View {
	v := View{
		Frame:      w.Frame,
		Level:      w.LevelIndex,
		LevelName:  w.Level.Name,
		Width:      w.Level.Width,
		Height:     w.Level.Height,
		Floors:     append([]geom.Rect(nil), w.Level.Floors...),
		Walls:      append([]geom.Rect(nil), w.Level.Walls...),
		PortalOpen: w.PortalOpen,
		CameraX:    w.Camera.X,
		GameOver:   w.GameOver,
		Paused:     w.Paused,
		Stats:      w.Stats,
		Player:     w.playerView(),
		Enemies:    make([]EnemyView, 0, len(w.Enemies)),
	}
	if w.Level.Portal != nil {
		portal := *w.Level.Portal
		v.Portal = &portal
	}

	p := &w.Player
	for _, b := range p.Bullets {
		v.Bullets = append(v.Bullets, BulletView{Pos: b.Pos, Color: b.Color})
	}
	if p.IsFiring && p.FireLine != nil {
		v.HitLines = append(v.HitLines, *p.FireLine)
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		v.Enemies = append(v.Enemies, enemyView(e))
		for _, b := range e.Bullets {
			v.Bullets = append(v.Bullets, BulletView{Pos: b.Pos, Color: b.Color, Enemy: true})
		}
		for _, g := range e.Grenades {
			v.Grenades = append(v.Grenades, GrenadeView{Pos: g.Pos, Homing: g.Homing})
		}
		if e.IsFiring && e.FireLine != nil {
			v.HitLines = append(v.HitLines, *e.FireLine)
		}
	}
	return v
}

func (w *World) playerView() PlayerView {
	p := &w.Player
	cfg := w.Cfg
	slot := p.Slot()

	pv := PlayerView{
		Pos:       p.Pos,
		Facing:    p.Facing,
		Visual:    p.Visual,
		Moving:    p.IsMoving,
		Jumping:   p.IsJumping,
		Firing:    p.IsFiring,
		FireAngle: p.FireAngle,

		HP:      p.HP,
		MaxHP:   p.MaxHP,
		Health:  fraction(float64(p.HP), float64(p.MaxHP)),
		Medkits: p.Medkits,

		Weapon:    slot.Name,
		Ammo:      p.Ammo[p.Current],
		MaxAmmo:   slot.MaxAmmo,
		Reloading: p.Reloading,

		Shielding: p.Shielding,
		Stamina:   fraction(p.Stamina, cfg.PlayerStaminaMax),
		Dashing:   p.Dashing,
		DashReady: 1 - fraction(float64(p.DashCooldown), float64(cfg.PlayerDashCooldown)),
		EMP:       fraction(float64(p.EMPTimer), float64(cfg.BossEMPDebuff)),
	}
	if p.Reloading {
		pv.ReloadFrac = 1 - fraction(float64(p.ReloadTimer), float64(cfg.PlayerReloadFrames))
	}
	return pv
}

func enemyView(e *Enemy) EnemyView {
	ev := EnemyView{
		ID:            e.ID,
		Kind:          e.Kind,
		Name:          e.Name,
		Pos:           e.Pos,
		Facing:        e.Facing,
		Visual:        e.Visual,
		State:         e.State,
		Moving:        e.IsMoving,
		Jumping:       e.IsJumping,
		Firing:        e.IsFiring,
		SpriteY:       e.SpriteY,
		Health:        fraction(float64(e.HP), float64(e.MaxHP)),
		Ability:       e.Ability.Kind,
		AbilityActive: e.Ability.Active,
	}
	if b := e.Boss; b != nil {
		ev.Boss = true
		ev.Berserk = b.Berserk
		ev.Flashing = b.Flashing
		ev.EMPRadius = b.EMPRadius
		if kind := b.ActiveAbility(); kind != AbilityNone {
			ev.Ability = kind
			ev.AbilityActive = true
		}
		if b.WellAnchor != nil {
			anchor := *b.WellAnchor
			ev.WellAnchor = &anchor
		}
	}
	return ev
}
