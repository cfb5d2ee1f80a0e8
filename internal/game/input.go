package game

import (
	"github.com/BradleyBao/Neurotrace/internal/shared/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// bindings maps every control to the keys that drive it.
var bindings = [input.ControlCount][]ebiten.Key{
	input.MoveLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.MoveRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Jump:       {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	input.Dash:       {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	input.Fire:       {ebiten.KeyJ},
	input.WeaponPrev: {ebiten.KeyQ},
	input.WeaponNext: {ebiten.KeyE},
	input.Reload:     {ebiten.KeyR},
	input.Medkit:     {ebiten.KeyH},
	input.Shield:     {ebiten.KeyK},
	input.Interact:   {ebiten.KeyF},
}

// ReadInput samples the keyboard and mouse. The cursor is mapped into world
// space using the camera offset and the logical scale.
func ReadInput(camX float64) input.State {
	var s input.State
	for c, keys := range bindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				s.Held[c] = true
			}
			if inpututil.IsKeyJustPressed(k) {
				s.Pressed[c] = true
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.Held[input.Fire] = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Pressed[input.Fire] = true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.Held[input.Shield] = true
	}

	_, wy := ebiten.Wheel()
	s = applyWheel(s, wy)

	mx, my := ebiten.CursorPosition()
	return s.Aim(camX+float64(mx)/renderScale, float64(my)/renderScale)
}

// applyWheel maps a vertical scroll to a weapon switch: up selects the
// previous slot, down the next.
func applyWheel(s input.State, wy float64) input.State {
	switch {
	case wy > 0:
		s.Pressed[input.WeaponPrev] = true
	case wy < 0:
		s.Pressed[input.WeaponNext] = true
	}
	return s
}

// merge ORs the pressed edges of next into s so a tap between two fixed
// steps is not lost.
func merge(s, next input.State) input.State {
	for c := range next.Pressed {
		s.Pressed[c] = s.Pressed[c] || next.Pressed[c]
	}
	s.Held = next.Held
	s.AimX, s.AimY = next.AimX, next.AimY
	return s
}

func ReadRestart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func ReadPaused() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}
