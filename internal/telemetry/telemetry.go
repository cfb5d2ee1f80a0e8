package telemetry

import (
	"sync"
	"time"

	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"
)

// Event kinds understood by the sink.
const (
	KindKill   = "kill"
	KindDamage = "damage"
	KindShot   = "shot"
	KindLevel  = "level"
	KindFrame  = "frame"
)

type Event struct {
	Kind string
	I    int
	F    float64
	At   time.Time
}

// Batch is the aggregate of every event received during one flush interval.
type Batch struct {
	Kills  int
	Dmg    int
	Shots  int
	Levels int
	Frames int
	AvgDt  float64
}

func (b Batch) empty() bool {
	return b.Kills == 0 && b.Dmg == 0 && b.Shots == 0 && b.Levels == 0 && b.Frames == 0
}

type Sink struct {
	In chan Event

	quit     chan struct{}
	done     chan struct{}
	interval time.Duration
	flush    func(Batch)
	once     sync.Once
}

// NewSink starts a sink that logs a batch every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	if flush == nil {
		flush = func(Batch) {}
	}
	s := &Sink{
		In:       make(chan Event, 256),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		interval: interval,
		flush:    flush,
	}
	go s.loop()

	return s
}

// Close stops the sink. It is safe to call more than once.
func (s *Sink) Close() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}

func (s *Sink) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float64

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case KindKill:
				b.Kills += ev.I
			case KindDamage:
				b.Dmg += ev.I
			case KindShot:
				b.Shots += ev.I
			case KindLevel:
				b.Levels += ev.I
			case KindFrame:
				b.Frames++
				dtSum += ev.F
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float64(b.Frames)
			}
			s.flush(b)
			// reset batch
			b = Batch{}
			dtSum = 0
		}
	}
}

func logBatch(b Batch) {
	if b.empty() {
		return
	}
	logger_config.Infof(
		"[telemetry] kills=%d dmg=%d shots=%d levels=%d frames=%d avgDt=%.4fs",
		b.Kills, b.Dmg, b.Shots, b.Levels, b.Frames, b.AvgDt,
	)
}
