package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/BradleyBao/Neurotrace/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spriteSize = 16

// palette is the 16 colour set bullet colour indices refer to.
var palette = [16]color.RGBA{
	{0, 0, 0, 255}, {29, 43, 83, 255}, {126, 37, 83, 255}, {0, 135, 81, 255},
	{171, 82, 54, 255}, {95, 87, 79, 255}, {194, 195, 199, 255}, {255, 241, 232, 255},
	{255, 0, 77, 255}, {255, 163, 0, 255}, {255, 236, 39, 255}, {0, 228, 54, 255},
	{41, 173, 255, 255}, {131, 118, 156, 255}, {255, 119, 168, 255}, {255, 204, 170, 255},
}

func paletteColor(i int) color.RGBA {
	if i < 0 || i >= len(palette) {
		return palette[7]
	}
	return palette[i]
}

var (
	bgColor      = color.RGBA{15, 15, 18, 255}
	floorColor   = color.RGBA{60, 60, 72, 255}
	wallColor    = color.RGBA{40, 40, 50, 255}
	portalClosed = color.RGBA{90, 40, 120, 255}
	portalOpen   = color.RGBA{120, 220, 255, 255}
	playerColor  = color.RGBA{80, 200, 120, 255}
	enemyColor   = color.RGBA{220, 80, 80, 255}
	bossColor    = color.RGBA{200, 60, 200, 255}
	flashColor   = color.RGBA{255, 255, 255, 255}
	corpseColor  = color.RGBA{70, 40, 40, 255}
	shieldColor  = color.RGBA{41, 173, 255, 160}
	lineColor    = color.RGBA{255, 255, 100, 255}
	grenadeColor = color.RGBA{255, 163, 0, 255}
	empColor     = color.RGBA{41, 173, 255, 120}
	wellColor    = color.RGBA{131, 118, 156, 200}
	overlayColor = color.RGBA{0, 0, 0, 180}
)

// drawWorld draws the playfield in world pixels; dst is one screen wide.
func drawWorld(dst *ebiten.Image, v world.View, sheet *SpriteSheet) {
	dst.Fill(bgColor)
	camX := float32(-v.CameraX)

	for _, r := range v.Floors {
		vector.FillRect(dst, camX+float32(r.X), float32(r.Y), float32(r.W), float32(r.H), floorColor, false)
	}
	for _, r := range v.Walls {
		vector.FillRect(dst, camX+float32(r.X), float32(r.Y), float32(r.W), float32(r.H), wallColor, false)
	}
	if p := v.Portal; p != nil {
		clr := portalClosed
		if v.PortalOpen {
			clr = portalOpen
		}
		vector.StrokeRect(dst, camX+float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, clr, false)
	}

	for _, e := range v.Enemies {
		drawEnemy(dst, camX, e, sheet, v.Frame)
	}
	drawPlayer(dst, camX, v.Player, sheet, v.Frame)

	for _, b := range v.Bullets {
		vector.FillRect(dst, camX+float32(b.Pos.X), float32(b.Pos.Y), 2, 1, paletteColor(b.Color), false)
	}
	for _, g := range v.Grenades {
		clr := grenadeColor
		if g.Homing {
			clr = paletteColor(8)
		}
		vector.FillCircle(dst, camX+float32(g.Pos.X), float32(g.Pos.Y), 1.5, clr, false)
	}
	for _, l := range v.HitLines {
		vector.StrokeLine(dst,
			camX+float32(l.A.X), float32(l.A.Y),
			camX+float32(l.B.X), float32(l.B.Y),
			1, lineColor, false)
	}
}

func drawPlayer(dst *ebiten.Image, camX float32, p world.PlayerView, sheet *SpriteSheet, frame uint64) {
	x, y := camX+float32(p.Pos.X), float32(p.Pos.Y)
	col := animColumn(p.Moving, p.Jumping, p.Visual == world.VisualDefeated, frame)
	if !drawSprite(dst, sheet.Frame(0, col), x, y, p.Facing, p.Visual) {
		vector.FillRect(dst, x+4, y+2, 8, 14, tint(playerColor, p.Visual), false)
	}
	if p.Shielding {
		off := float32(13)
		if p.Facing < 0 {
			off = 1
		}
		vector.FillRect(dst, x+off, y+1, 2, 15, shieldColor, false)
	}
	if p.Firing {
		cx, cy := x+8, y+8
		dx := float32(math.Cos(p.FireAngle)) * 6
		dy := float32(math.Sin(p.FireAngle)) * 6
		vector.StrokeLine(dst, cx, cy, cx+dx, cy+dy, 1, paletteColor(10), false)
	}
}

func drawEnemy(dst *ebiten.Image, camX float32, e world.EnemyView, sheet *SpriteSheet, frame uint64) {
	x, y := camX+float32(e.Pos.X), float32(e.Pos.Y)

	if e.Boss {
		if e.EMPRadius > 0 {
			vector.StrokeCircle(dst, x+8, y+8, float32(e.EMPRadius), 1, empColor, false)
		}
		if a := e.WellAnchor; a != nil {
			vector.StrokeCircle(dst, camX+float32(a.X), float32(a.Y), 6, 1, wellColor, false)
		}
		if e.Flashing && frame%4 < 2 {
			return
		}
	}
	if e.Ability == world.AbilityCamouflage && e.AbilityActive && frame%6 < 4 {
		return
	}

	col := animColumn(e.Moving, e.Jumping, e.Visual == world.VisualDefeated, frame)
	if !drawSprite(dst, sheet.Frame(e.SpriteY, col), x, y, e.Facing, e.Visual) {
		base := enemyColor
		if e.Boss {
			base = bossColor
		}
		vector.FillRect(dst, x+3, y+2, 10, 14, tint(base, e.Visual), false)
	}

	if e.Visual != world.VisualDefeated && e.Health < 1 {
		vector.FillRect(dst, x+2, y-3, 12, 1, palette[5], false)
		vector.FillRect(dst, x+2, y-3, float32(12*e.Health), 1, palette[8], false)
	}
	if e.AbilityActive && (e.Ability == world.AbilityBarrier || e.Ability == world.AbilityShieldOverload) {
		vector.StrokeRect(dst, x+1, y, 14, 16, 1, shieldColor, false)
	}
}

// drawSprite draws one sheet frame flipped to facing; it reports false when
// there is no frame so the caller can fall back to shapes.
func drawSprite(dst, frame *ebiten.Image, x, y float32, facing int, vis world.VisualState) bool {
	if frame == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	if facing < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(spriteSize, 0)
	}
	op.GeoM.Translate(float64(x), float64(y))
	if vis == world.VisualDamage {
		op.ColorScale.Scale(2, 2, 2, 1)
	}
	dst.DrawImage(frame, op)
	return true
}

func tint(c color.RGBA, vis world.VisualState) color.RGBA {
	switch vis {
	case world.VisualDamage:
		return flashColor
	case world.VisualDefeated:
		return corpseColor
	default:
		return c
	}
}

// drawHUD draws text in screen pixels, on top of the scaled playfield.
func drawHUD(screen *ebiten.Image, v world.View) {
	p := v.Player
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	ammo := fmt.Sprintf("%d/%d", p.Ammo, p.MaxAmmo)
	if p.Reloading {
		ammo = fmt.Sprintf("reload %d%%", int(p.ReloadFrac*100))
	}
	hud := fmt.Sprintf(
		"HP %d/%d  MED %d\n%s %s\nSTA %d%%  LV %d %s",
		p.HP, p.MaxHP, p.Medkits,
		p.Weapon, ammo,
		int(p.Stamina*100), v.Level+1, v.LevelName,
	)
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)
	if p.EMP > 0 {
		ebitenutil.DebugPrintAt(screen, "EMP", sw-24, 4)
	}

	for _, e := range v.Enemies {
		if e.Boss && e.Visual != world.VisualDefeated {
			vector.FillRect(screen, 8, float32(sh-12), float32(sw-16), 4, palette[5], false)
			vector.FillRect(screen, 8, float32(sh-12), float32(sw-16)*float32(e.Health), 4, bossColor, false)
			ebitenutil.DebugPrintAt(screen, e.Name, 8, sh-28)
		}
	}

	if v.PortalOpen {
		ebitenutil.DebugPrintAt(screen, "Portal open: press F", 4, 52)
	}

	// overlays (priority: GameOver > Paused)
	if v.GameOver {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press Enter to restart", 8, 110)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Kills: %d", v.Stats.EnemiesKilled), 8, 130)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Damage Taken: %d", v.Stats.DamageTaken), 8, 150)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Levels Cleared: %d", v.Stats.LevelsCleared), 8, 170)
		return
	}
	if v.Paused {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 140}, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press Esc to resume", 8, 110)
		ebitenutil.DebugPrintAt(screen, "Press Enter to restart", 8, 130)
	}
}
