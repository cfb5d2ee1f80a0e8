package world

import (
	"slices"

	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
	"github.com/BradleyBao/Neurotrace/internal/level"
	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

// Options configures NewWorld. Zero values fall back to seed 1, the default
// config and the embedded level table.
type Options struct {
	Seed       int64
	Config     *Config
	Levels     LevelProvider
	StartLevel int
}

func NewWorld(opts Options) *World {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if opts.Levels == nil {
		opts.Levels = level.MustDefault()
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	w := &World{
		Cfg:     cfg,
		Levels:  opts.Levels,
		opts:    opts,
		Enemies: make([]Enemy, 0, 16),
		rngSeed: opts.Seed,
	}
	w.ensureRNG()

	d, idx := w.resolveLevel(opts.StartLevel)
	w.Player = newPlayer(cfg, d.Spawn)
	w.enterLevel(idx, d)
	return w
}

func (w *World) Reset() {
	// keep options; rebuild every mutable field
	*w = *NewWorld(w.opts)
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

// Tick advances the simulation by exactly one frame.
func (w *World) Tick() {
	for _, m := range w.inbox {
		switch msg := m.(type) {
		case MsgInput:
			w.input = msg.Input
		case MsgRestart:
			if w.GameOver || w.Paused {
				w.Reset()
			}
		case MsgTogglePause:
			if !w.GameOver {
				w.Paused = !w.Paused
			}
		}
	}
	w.inbox = w.inbox[:0]

	// stop simulating during game over or pause
	if w.GameOver || w.Paused {
		return
	}

	// an input snapshot is consumed by exactly one frame
	in := w.input
	w.input = input.State{}
	w.Frame++

	w.updatePlayer(in)
	for i := range w.Enemies {
		w.updateEnemy(&w.Enemies[i])
	}
	w.resolvePlayerProjectiles()
	w.flushPending()
	w.removeCorpses()
	w.updatePortal(in)
	w.Camera.follow(w.Player.Center().X, w.Level.Width, w.Cfg)

	if !w.Player.Alive {
		w.GameOver = true
	}
}

// ============================================================================
// LEVELS
// ============================================================================

// resolveLevel falls back to level 0, then to a bare flat room when the
// provider is empty.
func (w *World) resolveLevel(index int) (level.Descriptor, int) {
	if w.Levels.Count() > 0 {
		if d, ok := w.Levels.Level(index); ok {
			return d, index
		}
		if d, ok := w.Levels.Level(0); ok {
			logger_config.Warnf("level %d not found, starting at level 0", index)
			return d, 0
		}
	}
	logger_config.Warnf("level provider is empty, using a flat room")
	return level.Descriptor{
		Name:   "empty",
		Width:  w.Cfg.ScreenWidth,
		Height: w.Cfg.ScreenWidth,
		Spawn:  Vec2{X: 8, Y: w.Cfg.ScreenWidth - 2*hitboxSize},
	}, 0
}

// enterLevel replaces the level, its enemies and every projectile. The
// player keeps health, ammo and inventory.
func (w *World) enterLevel(index int, d level.Descriptor) {
	w.LevelIndex = index
	w.Level = d
	w.PortalOpen = false
	w.pending = w.pending[:0]
	w.Enemies = w.Enemies[:0]
	w.hitboxes = newHitboxIndex(d.Width, d.Height)

	w.Player.placeAt(d.Spawn)
	for _, s := range d.Enemies {
		w.Enemies = append(w.Enemies, w.NewEnemy(EnemyKind(s.Type), s.X, s.Y))
	}
	w.Stats.EnemiesSpawned += len(d.Enemies)
	w.Camera.snap(w.Player.Center().X, d.Width, w.Cfg)

	logger_config.Infof("level %d (%s) loaded: %d enemies", index, d.Name, len(d.Enemies))
}

// allDefeated reports whether no enemy is alive, including queued summons.
func (w *World) allDefeated() bool {
	if len(w.pending) > 0 {
		return false
	}
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			return false
		}
	}
	return true
}

// updatePortal opens the portal once the level is cleared and moves the
// player on when they interact inside it.
func (w *World) updatePortal(in input.State) {
	portal := w.Level.Portal
	if portal == nil {
		w.PortalOpen = false
		return
	}
	w.PortalOpen = w.allDefeated()
	if !w.PortalOpen || !w.Player.Alive || !in.JustPressed(input.Interact) {
		return
	}
	if !w.Player.Hitbox().Overlaps(*portal) {
		return
	}

	next := w.Levels.Next(w.LevelIndex)
	w.Stats.LevelsCleared++
	logger_config.Infof("level %d cleared at frame %d, entering level %d", w.LevelIndex, w.Frame, next)
	d, idx := w.resolveLevel(next)
	w.enterLevel(idx, d)
}

// ============================================================================
// ENEMY LIST
// ============================================================================

func (w *World) queueSpawn(e Enemy) {
	w.pending = append(w.pending, e)
}

func (w *World) flushPending() {
	if len(w.pending) == 0 {
		return
	}
	w.Enemies = append(w.Enemies, w.pending...)
	w.Stats.EnemiesSpawned += len(w.pending)
	w.pending = w.pending[:0]
}

// removeCorpses drops defeated enemies whose corpse timer ran out and whose
// projectiles are all gone.
func (w *World) removeCorpses() {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool {
		return !e.Alive && e.CorpseTimer <= 0 && !e.hasProjectiles()
	})
}

// ============================================================================
// PLAYER PROJECTILES
// ============================================================================

// resolvePlayerProjectiles moves player bullets, applies them to enemies and
// applies the displayed hit line.
func (w *World) resolvePlayerProjectiles() {
	p := &w.Player
	w.hitboxes.sync(w.Enemies)

	byID := make(map[int]int, len(w.Enemies))
	for i := range w.Enemies {
		byID[w.Enemies[i].ID] = i
	}

	for i := range p.Bullets {
		b := &p.Bullets[i]
		w.advanceBullet(b)
		if !b.Alive {
			continue
		}

		w.candidate = w.hitboxes.candidates(b.Pos, w.candidate)
		slices.Sort(w.candidate)
		w.candidate = slices.Compact(w.candidate)
		for _, id := range w.candidate {
			e := &w.Enemies[byID[id]]
			if !e.Alive || !e.Hitbox().ContainsStrict(b.Pos) {
				continue
			}
			if b.strike(e.ID) {
				w.damageEnemy(e, b.Damage)
			}
			if !b.Alive {
				break
			}
		}
	}
	p.Bullets = pruneBullets(p.Bullets)

	if p.IsFiring && p.FireLine != nil {
		for i := range w.Enemies {
			e := &w.Enemies[i]
			if e.Alive && geom.SegmentHitsRect(*p.FireLine, e.Hitbox()) {
				w.damageEnemy(e, p.LineDamage)
			}
		}
	}
}
