package world

import "github.com/BradleyBao/Neurotrace/internal/shared/geom"

type Vec2 = geom.Vec2

// VisualState selects which sprite variant the render sink shows.
type VisualState int

const (
	VisualNormal VisualState = iota
	VisualDamage
	VisualDefeated
)

func (v VisualState) String() string {
	switch v {
	case VisualDamage:
		return "damage"
	case VisualDefeated:
		return "defeated"
	default:
		return "normal"
	}
}

// AIState is the enemy behavior state.
type AIState int

const (
	StatePatrol AIState = iota
	StateChase
	StateAttack
	StateRetreat
)

func (s AIState) String() string {
	switch s {
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateRetreat:
		return "retreat"
	default:
		return "patrol"
	}
}

// WeaponKind covers both the player loadout and enemy weapons.
type WeaponKind int

const (
	WeaponPistol WeaponKind = iota
	WeaponRifle
	WeaponSniper
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponRifle:
		return "Rifle"
	case WeaponSniper:
		return "Sniper"
	default:
		return "Pistol"
	}
}
