package geom

// PointInRect is inclusive on every edge.
func PointInRect(x, y float64, r Rect) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// SegmentIntersectsRect tests the segment (x0,y0)-(x1,y1) against r.
// An endpoint inside r is an immediate hit; otherwise the segment is tested
// against each of the four edges. A zero-length segment therefore degrades to
// the point test without any division.
func SegmentIntersectsRect(x0, y0, x1, y1 float64, r Rect) bool {
	if PointInRect(x0, y0, r) || PointInRect(x1, y1, r) {
		return true
	}
	if x0 == x1 && y0 == y1 {
		return false
	}

	a := Vec2{x0, y0}
	b := Vec2{x1, y1}
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.W, r.Y}
	br := Vec2{r.X + r.W, r.Y + r.H}
	bl := Vec2{r.X, r.Y + r.H}

	edges := [4][2]Vec2{
		{tl, tr},
		{tr, br},
		{br, bl},
		{bl, tl},
	}
	for _, e := range edges {
		if segmentsIntersect(a, b, e[0], e[1]) {
			return true
		}
	}
	return false
}

// SegmentHitsRect is the Segment form of SegmentIntersectsRect.
func SegmentHitsRect(s Segment, r Rect) bool {
	return SegmentIntersectsRect(s.A.X, s.A.Y, s.B.X, s.B.Y, r)
}

func ccw(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// segments ab and cd intersect iff each one's endpoints straddle the other.
func segmentsIntersect(a, b, c, d Vec2) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}
