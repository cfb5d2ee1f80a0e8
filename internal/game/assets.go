package game

import (
	"image"

	"github.com/BradleyBao/Neurotrace/internal/assets"
	"github.com/BradleyBao/Neurotrace/internal/commons/logger_config"

	"github.com/hajimehoshi/ebiten/v2"
)

// sheet columns: 0 idle, 1-3 walk cycle, 4 airborne, 5 defeated
const (
	colIdle     = 0
	colWalk     = 1
	walkFrames  = 3
	colAirborne = 4
	colDefeated = 5
)

type frameKey struct{ row, col int }

// SpriteSheet owns the one texture atlas the game draws from. Rows are
// addressed by pixel offset (the archetype's sprite row), columns by frame
// index. The image is decoded by the loader goroutine and uploaded here, on
// the main thread.
type SpriteSheet struct {
	loader *assets.Loader
	key    string
	path   string

	img     *ebiten.Image
	pending bool
	err     error

	frames map[frameKey]*ebiten.Image
}

func NewSpriteSheet(loader *assets.Loader, key, path string) *SpriteSheet {
	return &SpriteSheet{
		loader: loader,
		key:    key,
		path:   path,
		frames: map[frameKey]*ebiten.Image{},
	}
}

// Request queues the sheet unless it is loaded, in flight or failed.
func (s *SpriteSheet) Request() {
	if s.pending || s.img != nil || s.err != nil {
		return
	}
	select {
	case s.loader.Req <- assets.Request{Key: s.key, Path: s.path}:
		s.pending = true
	default:
		logger_config.Warnf("[assets] request queue full for key=%s", s.key)
	}
}

// Poll drains loader results; call it once per Update. A sheet whose request
// could not be queued is requested again.
func (s *SpriteSheet) Poll() {
	for {
		select {
		case r := <-s.loader.Res:
			if r.Key != s.key {
				logger_config.Debugf("[assets] ignoring result for key=%s", r.Key)
				continue
			}
			s.pending = false
			if r.Err != nil {
				s.err = r.Err
				logger_config.Warnf("[assets] sprite sheet unavailable, drawing shapes: %v", r.Err)
				continue
			}
			s.img = ebiten.NewImageFromImage(r.Image)
			clear(s.frames)
			logger_config.Infof("[assets] sprite sheet %s loaded (%v)", s.path, r.Image.Bounds().Size())
		default:
			s.Request()
			return
		}
	}
}

func (s *SpriteSheet) Status() (loaded, pending bool, err error) {
	return s.img != nil, s.pending, s.err
}

// Frame returns the 16x16 frame at pixel row and column col, or nil when the
// sheet is not loaded or the frame lies outside it.
func (s *SpriteSheet) Frame(row, col int) *ebiten.Image {
	if s.img == nil {
		return nil
	}
	k := frameKey{row, col}
	if f, ok := s.frames[k]; ok {
		return f
	}
	rect, ok := frameRect(s.img.Bounds(), row, col)
	if !ok {
		s.frames[k] = nil
		return nil
	}
	f := s.img.SubImage(rect).(*ebiten.Image)
	s.frames[k] = f
	return f
}

func frameRect(bounds image.Rectangle, row, col int) (image.Rectangle, bool) {
	if row < 0 || col < 0 {
		return image.Rectangle{}, false
	}
	x := bounds.Min.X + col*spriteSize
	y := bounds.Min.Y + row
	r := image.Rect(x, y, x+spriteSize, y+spriteSize)
	return r, r.In(bounds)
}

// animColumn picks the sheet column for an actor's pose.
func animColumn(moving, jumping, defeated bool, frame uint64) int {
	switch {
	case defeated:
		return colDefeated
	case jumping:
		return colAirborne
	case moving:
		return colWalk + int(frame/8%walkFrames)
	default:
		return colIdle
	}
}
