package game

// CheckCollision checks if two circles overlap. Touching circles do not.
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 < radSum*radSum
}

// CheckCollisions runs the all-pairs sweep over every live entity. Pairs are
// ordered (a, b) and (b, a) are both visited, and a == b is visited too;
// the predicate rejects self pairs. The first pair whose resolution reports
// true ends the sweep, so at most one collision resolves per call.
// Reports whether a collision was resolved.
func (w *World) CheckCollisions() bool {
	all := w.AllEntities()
	for _, a := range all {
		for _, b := range all {
			if !a.IsCollidedWith(b) {
				continue
			}
			if a.CollideWith(b) {
				w.log.Debug("collision resolved",
					zapKind("a", a), zapKind("b", b))
				if w.onCollision != nil {
					w.onCollision(a, b)
				}
				return true
			}
		}
	}
	return false
}
