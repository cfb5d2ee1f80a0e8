package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkBatchesEvents(t *testing.T) {
	out := make(chan Batch, 8)
	s := newSink(10*time.Millisecond, func(b Batch) {
		if b.empty() {
			return
		}
		select {
		case out <- b:
		default:
		}
	})
	defer s.Close()

	s.In <- Event{Kind: KindKill, I: 2, At: time.Now()}
	s.In <- Event{Kind: KindDamage, I: 4, At: time.Now()}
	s.In <- Event{Kind: KindShot, I: 3, At: time.Now()}
	s.In <- Event{Kind: KindLevel, I: 1, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.016, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.018, At: time.Now()}

	deadline := time.After(700 * time.Millisecond)
	var got Batch
	for {
		select {
		case b := <-out:
			got.Kills += b.Kills
			got.Dmg += b.Dmg
			got.Shots += b.Shots
			got.Levels += b.Levels
			got.Frames += b.Frames
			if b.Frames > 0 {
				got.AvgDt = b.AvgDt
			}
			if got.Kills == 2 && got.Dmg == 4 && got.Shots == 3 && got.Levels == 1 && got.Frames == 2 {
				if b.Frames == 2 {
					assert.InDelta(t, 0.017, got.AvgDt, 1e-9)
				}
				return
			}

		case <-deadline:
			t.Fatalf("timed out waiting for telemetry batch, have %+v", got)
		}
	}
}

func TestSinkCloseIsIdempotent(t *testing.T) {
	s := newSink(10*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sink close blocked")
	}
}

func TestBatchEmpty(t *testing.T) {
	require.True(t, Batch{}.empty())
	require.False(t, Batch{Frames: 1}.empty())
	require.False(t, Batch{Levels: 1}.empty())
}
