package world

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	hitboxCell = 16
	probeSize  = 24
)

var tagHitbox = resolv.NewTag("hitbox")

// hitboxIndex is the broadphase for player projectiles: enemy hitboxes live
// in a resolv space and the cells around a probe shape give the nearby
// candidates. The exact hit test is still done by the caller.
type hitboxIndex struct {
	space  *resolv.Space
	probe  *resolv.ConvexPolygon
	shapes map[int]*resolv.ConvexPolygon
	owners map[resolv.IShape]int
}

func newHitboxIndex(width, height float64) *hitboxIndex {
	sw := int(math.Ceil(width)) + hitboxCell
	sh := int(math.Ceil(height)) + hitboxCell

	idx := &hitboxIndex{
		space:  resolv.NewSpace(sw, sh, hitboxCell, hitboxCell),
		probe:  resolv.NewRectangle(0, 0, probeSize, probeSize),
		shapes: make(map[int]*resolv.ConvexPolygon, 16),
		owners: make(map[resolv.IShape]int, 16),
	}
	idx.space.Add(idx.probe)
	return idx
}

// sync mirrors the live enemies into the space. Defeated enemies are dropped.
func (h *hitboxIndex) sync(enemies []Enemy) {
	seen := make(map[int]bool, len(enemies))
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		seen[e.ID] = true

		sh, ok := h.shapes[e.ID]
		if !ok {
			sh = resolv.NewRectangle(0, 0, hitboxSize, hitboxSize)
			sh.Tags().Set(tagHitbox)
			h.space.Add(sh)
			h.shapes[e.ID] = sh
			h.owners[sh] = e.ID
		}
		c := e.Center()
		sh.SetPosition(c.X, c.Y)
	}

	for id, sh := range h.shapes {
		if seen[id] {
			continue
		}
		h.space.Remove(sh)
		delete(h.owners, sh)
		delete(h.shapes, id)
	}
}

// candidates returns the IDs of enemies whose shape shares a cell with the
// area around p. It may over-report; callers run the exact hitbox test.
func (h *hitboxIndex) candidates(p Vec2, out []int) []int {
	out = out[:0]
	h.probe.SetPosition(p.X, p.Y)
	h.probe.SelectTouchingCells(1).FilterShapes().ByTags(tagHitbox).ForEach(func(sh resolv.IShape) bool {
		if id, ok := h.owners[sh]; ok {
			out = append(out, id)
		}
		return true
	})
	return out
}
