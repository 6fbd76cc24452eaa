package geom

// ClipSegment clips the segment p0->p1 against b using the Liang–Barsky slab
// method. On success it returns the entry and exit parameters u0 <= u1 in
// [0, 1]. A segment parallel to a slab and outside it is rejected.
func ClipSegment(p0, p1 Vec2, b Box) (u0, u1 float64, ok bool) {
	lo, hi := b.Min(), b.Max()
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		p0.X - lo.X,
		hi.X - p0.X,
		p0.Y - lo.Y,
		hi.Y - p0.Y,
	}

	u0, u1 = 0, 1
	for i := 0; i < 4; i++ {
		if NearlyZero(p[i]) {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u1 {
				return 0, 0, false
			}
			if t > u0 {
				u0 = t
			}
		} else {
			if t < u0 {
				return 0, 0, false
			}
			if t < u1 {
				u1 = t
			}
		}
	}
	return u0, u1, true
}

// SegmentIntersectsBox reports whether any part of p0->p1 lies within b.
func SegmentIntersectsBox(p0, p1 Vec2, b Box) bool {
	_, _, ok := ClipSegment(p0, p1, b)
	return ok
}

// ExitPoint returns where the ray from start toward target leaves b. When the
// clip fails the start point is returned unchanged with ok == false.
func ExitPoint(start, target Vec2, b Box) (Vec2, bool) {
	_, u1, ok := ClipSegment(start, target, b)
	if !ok {
		return start, false
	}
	return Lerp(start, target, u1), true
}
