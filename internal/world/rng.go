package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

func (w *World) randFloat() float64 {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Float64()
}

func (w *World) randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Intn(n)
}

// randInt returns an int in [lo, hi], inclusive on both ends.
func (w *World) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.randIntn(hi-lo+1)
}

// randUniform returns a float in [lo, hi).
func (w *World) randUniform(lo, hi float64) float64 {
	return lo + (hi-lo)*w.randFloat()
}

// chance rolls a probability p.
func (w *World) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return w.randFloat() < p
}
