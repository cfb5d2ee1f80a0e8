package game

import (
	"time"

	"github.com/BradleyBao/Neurotrace/internal/assets"
	"github.com/BradleyBao/Neurotrace/internal/shared/input"
	"github.com/BradleyBao/Neurotrace/internal/telemetry"
	"github.com/BradleyBao/Neurotrace/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// logical view is 128x128 world pixels, drawn at renderScale
	viewSize    = 128
	renderScale = 2

	spriteSheetKey = "sprites"
)

type Game struct {
	w *world.World

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	// pressed edges waiting for the next fixed step
	pending input.State

	loader *assets.Loader
	sheet  *SpriteSheet

	telemetry *telemetry.Sink

	// cumulative stat baselines (for delta events)
	lastStats world.Stats

	view   world.View
	canvas *ebiten.Image
}

func New(seed int64) *Game {
	g := &Game{
		w:         world.NewWorld(world.Options{Seed: seed}),
		last:      time.Now(),
		fixedStep: time.Second / 60,
	}
	g.loader = assets.NewLoader()
	g.sheet = NewSpriteSheet(g.loader, spriteSheetKey, "sprites.png")
	g.telemetry = telemetry.NewSink()
	g.view = g.w.View()

	g.sheet.Request()
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.sheet.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > 250*time.Millisecond {
		frameDt = 250 * time.Millisecond
	}
	g.sendTelemetry(telemetry.Event{
		Kind: telemetry.KindFrame,
		F:    frameDt.Seconds(),
		At:   now,
	})
	g.accum += frameDt

	g.pending = merge(g.pending, ReadInput(g.view.CameraX))

	if ReadRestart() {
		g.w.Enqueue(world.MsgRestart{})
	}
	if ReadPaused() {
		g.w.Enqueue(world.MsgTogglePause{})
	}

	// fixed-step simulation; edges go to the first step only
	for g.accum >= g.fixedStep {
		g.w.Enqueue(world.MsgInput{Input: g.pending})
		g.pending.Pressed = [input.ControlCount]bool{}

		g.w.Tick()
		g.accum -= g.fixedStep
	}

	g.view = g.w.View()
	g.emitWorldDeltas(now)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(viewSize, viewSize)
	}
	drawWorld(g.canvas, g.view, g.sheet)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(renderScale, renderScale)
	screen.DrawImage(g.canvas, op)

	drawHUD(screen, g.view)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return viewSize * renderScale, viewSize * renderScale
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
}

// emitWorldDeltas turns the cumulative world stats into telemetry events. A
// restart resets the stats, which just resets the baseline.
func (g *Game) emitWorldDeltas(at time.Time) {
	stats := g.w.Stats
	prev := g.lastStats
	g.lastStats = stats

	deltas := []struct {
		kind      string
		now, prev int
	}{
		{telemetry.KindKill, stats.EnemiesKilled, prev.EnemiesKilled},
		{telemetry.KindDamage, stats.DamageTaken, prev.DamageTaken},
		{telemetry.KindShot, stats.ShotsFired, prev.ShotsFired},
		{telemetry.KindLevel, stats.LevelsCleared, prev.LevelsCleared},
	}
	for _, d := range deltas {
		if d.now > d.prev {
			g.sendTelemetry(telemetry.Event{Kind: d.kind, I: d.now - d.prev, At: at})
		}
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}

	select {
	case g.telemetry.In <- ev:
	default:
		// drop on backpressure so the fixed-step loop never stalls
	}
}
