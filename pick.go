package hipedit

import "github.com/gekko3d/hipedit/geom"

// Hits at or beyond this distance are misses.
const pickCeiling = 1000

// nearestHit returns the index with the strictly smallest distance below the
// ceiling, or -1. Ties keep the lowest index.
func nearestHit(n int, intersect func(i int) (float32, bool)) (int, float32) {
	best := -1
	dist := float32(pickCeiling)
	for i := 0; i < n; i++ {
		d, ok := intersect(i)
		if ok && d < dist {
			dist = d
			best = i
		}
	}
	return best, dist
}

// pick returns the nearest handle of set hit by r.
func pick(set []GizmoAxis, r geom.Ray) (int, float32) {
	return nearestHit(len(set), func(i int) (float32, bool) {
		return set[i].IntersectsWith(r)
	})
}
