package main

import (
	"os"
	"strconv"

	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
	"github.com/BradleyBao/Neurotrace/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("Neurotrace")

	g := game.New(seedFromEnv())
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		logger_config.Errorf("run game: %v", err)
	}
}

// seedFromEnv reads NEUROTRACE_SEED; a missing or bad value means seed 1.
func seedFromEnv() int64 {
	raw := os.Getenv("NEUROTRACE_SEED")
	if raw == "" {
		return 1
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger_config.Warnf("ignoring NEUROTRACE_SEED=%q: %v", raw, err)
		return 1
	}
	return seed
}
