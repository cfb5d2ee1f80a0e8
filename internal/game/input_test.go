package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

func TestApplyWheel(t *testing.T) {
	up := applyWheel(input.State{}, 1)
	assert.True(t, up.JustPressed(input.WeaponPrev))
	assert.False(t, up.JustPressed(input.WeaponNext))

	down := applyWheel(input.State{}, -0.5)
	assert.True(t, down.JustPressed(input.WeaponNext))
	assert.False(t, down.JustPressed(input.WeaponPrev))

	assert.Equal(t, input.State{}, applyWheel(input.State{}, 0))
}

func TestMergeKeepsEdgesUntilConsumed(t *testing.T) {
	first := input.State{}.Press(input.Jump).Aim(10, 20)
	second := input.State{}.Hold(input.MoveLeft).Aim(30, 40)

	got := merge(first, second)
	assert.True(t, got.JustPressed(input.Jump))
	assert.True(t, got.IsHeld(input.MoveLeft))
	assert.False(t, got.IsHeld(input.Jump), "held state is the latest sample")
	assert.Equal(t, 30.0, got.AimX)
	assert.Equal(t, 40.0, got.AimY)
}
