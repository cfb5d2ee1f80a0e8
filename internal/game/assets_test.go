package game

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BradleyBao/Neurotrace/internal/assets"
)

func TestFrameRect(t *testing.T) {
	bounds := image.Rect(0, 0, 96, 208)

	tests := []struct {
		name     string
		row, col int
		want     image.Rectangle
		ok       bool
	}{
		{name: "player idle", row: 0, col: 0, want: image.Rect(0, 0, 16, 16), ok: true},
		{name: "guard walk", row: 16, col: 2, want: image.Rect(32, 16, 48, 32), ok: true},
		{name: "boss defeated", row: 192, col: 5, want: image.Rect(80, 192, 96, 208), ok: true},
		{name: "column past sheet", row: 0, col: 6, ok: false},
		{name: "row past sheet", row: 200, col: 0, ok: false},
		{name: "negative", row: -1, col: 0, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := frameRect(bounds, tt.row, tt.col)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAnimColumn(t *testing.T) {
	assert.Equal(t, colIdle, animColumn(false, false, false, 0))
	assert.Equal(t, colAirborne, animColumn(true, true, false, 0))
	assert.Equal(t, colDefeated, animColumn(true, true, true, 0))
	assert.Equal(t, colWalk, animColumn(true, false, false, 0))
	assert.Equal(t, colWalk+1, animColumn(true, false, false, 8))
	assert.Equal(t, colWalk, animColumn(true, false, false, 24))
}

func TestSpriteSheetRequestLifecycle(t *testing.T) {
	// no reader on Req: the queue is always full
	l := &assets.Loader{Req: make(chan assets.Request), Res: make(chan assets.Result, 2)}
	s := NewSpriteSheet(l, "sprites", "sprites.png")

	s.Request()
	_, pending, err := s.Status()
	assert.False(t, pending, "a full queue leaves the sheet retryable")
	assert.NoError(t, err)

	l.Req = make(chan assets.Request, 1)
	s.Poll()
	_, pending, _ = s.Status()
	assert.True(t, pending, "poll retries the request")
	assert.Equal(t, "sprites", (<-l.Req).Key)

	l.Res <- assets.Result{Key: "other"}
	l.Res <- assets.Result{Key: "sprites", Err: errors.New("missing")}
	s.Poll()
	loaded, pending, err := s.Status()
	assert.False(t, loaded)
	assert.False(t, pending)
	assert.Error(t, err)
	assert.Nil(t, s.Frame(0, 0))

	s.Request()
	assert.Empty(t, l.Req, "a failed sheet is not requested again")
}
