package world

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/BradleyBao/Neurotrace/internal/shared/input"
)

const ReplayVersion = 1

type ReplayHeader struct {
	Version    int    `json:"version"`
	Seed       int64  `json:"seed"`
	StartLevel int    `json:"start_level"`
	ConfigHash string `json:"config_hash"`
}

// Replay is a recorded input stream. One entry per simulated frame.
type Replay struct {
	Header ReplayHeader  `json:"header"`
	Frames []input.State `json:"frames"`
}

func ConfigHash(cfg Config) (string, error) {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal replay config: %w", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}

// Recorder captures the inputs fed to a world so the run can be replayed.
type Recorder struct {
	rep Replay
}

func NewRecorder(w *World) (*Recorder, error) {
	hash, err := ConfigHash(w.Cfg)
	if err != nil {
		return nil, err
	}
	return &Recorder{rep: Replay{Header: ReplayHeader{
		Version:    ReplayVersion,
		Seed:       w.rngSeed,
		StartLevel: w.opts.StartLevel,
		ConfigHash: hash,
	}}}, nil
}

func (r *Recorder) Record(in input.State) {
	r.rep.Frames = append(r.rep.Frames, in)
}

func (r *Recorder) Replay() Replay {
	out := r.rep
	out.Frames = append([]input.State(nil), r.rep.Frames...)
	return out
}

// RunReplay rebuilds a world from rep and feeds it every recorded frame.
// The config must hash to the recorded value.
func RunReplay(rep Replay, cfg Config, levels LevelProvider) (*World, error) {
	if rep.Header.Version != ReplayVersion {
		return nil, fmt.Errorf("unsupported replay version: got %d want %d", rep.Header.Version, ReplayVersion)
	}
	hash, err := ConfigHash(cfg)
	if err != nil {
		return nil, err
	}
	if hash != rep.Header.ConfigHash {
		return nil, fmt.Errorf("replay config mismatch: got %s want %s", hash, rep.Header.ConfigHash)
	}

	w := NewWorld(Options{Seed: rep.Header.Seed, Config: &cfg, Levels: levels, StartLevel: rep.Header.StartLevel})
	for _, in := range rep.Frames {
		w.Enqueue(MsgInput{Input: in})
		w.Tick()
	}
	return w, nil
}

// ViewDigest hashes a view; equal digests mean identical frames.
func ViewDigest(v View) (string, error) {
	blob, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal view: %w", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}
