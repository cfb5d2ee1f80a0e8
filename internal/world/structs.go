package world

import (
	"math/rand"

	"github.com/BradleyBao/Neurotrace/internal/level"
	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

// LevelProvider is the read-only level source the driver loads from.
type LevelProvider interface {
	Count() int
	Level(index int) (level.Descriptor, bool)
	// Next is the level after current, wrapping to 0 past the last one.
	Next(current int) int
}

type MsgInput struct{ Input input.State }

type World struct {
	inbox []Msg
	input input.State

	Cfg    Config
	Levels LevelProvider
	opts   Options

	LevelIndex int
	Level      level.Descriptor
	PortalOpen bool

	Player  Player
	Enemies []Enemy

	// pending holds enemies created during the frame (boss summons). They
	// join Enemies after the frame's enemy pass.
	pending []Enemy

	Camera Camera

	hitboxes  *hitboxIndex
	candidate []int

	rng      *rand.Rand
	rngSeed  int64
	rngCalls uint64

	// run state
	Frame    uint64
	GameOver bool
	Paused   bool

	// stats
	Stats Stats

	nextEnemyID int
}

type Stats struct {
	EnemiesSpawned int
	EnemiesKilled  int
	DamageTaken    int
	ShotsFired     int
	LevelsCleared  int
}
