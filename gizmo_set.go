package hipedit

// GizmoSet owns the five per-mode handle collections.
type GizmoSet struct {
	Position      []GizmoAxis // X, Y, Z
	Trigger       []GizmoAxis // X, Y, Z on the primary corner, TrigX1..Z1 on the secondary
	Rotation      []GizmoAxis // Yaw, Pitch, Roll
	Scale         []GizmoAxis // ScaleX, ScaleY, ScaleZ, ScaleAll
	PositionLocal []GizmoAxis // X, Y, Z along the pivot rotation
}

func NewGizmoSet() *GizmoSet {
	s := &GizmoSet{}
	for _, k := range []GizmoKind{GizmoX, GizmoY, GizmoZ} {
		s.Position = append(s.Position, newAxis(k, shapeArrow))
		s.PositionLocal = append(s.PositionLocal, newAxis(k, shapeArrow))
	}
	for _, k := range []GizmoKind{GizmoX, GizmoY, GizmoZ, GizmoTrigX1, GizmoTrigY1, GizmoTrigZ1} {
		s.Trigger = append(s.Trigger, newAxis(k, shapeArrow))
	}
	for _, k := range []GizmoKind{GizmoYaw, GizmoPitch, GizmoRoll} {
		s.Rotation = append(s.Rotation, newAxis(k, shapeRing))
	}
	for _, k := range []GizmoKind{GizmoScaleX, GizmoScaleY, GizmoScaleZ, GizmoScaleAll} {
		s.Scale = append(s.Scale, newAxis(k, shapeCube))
	}
	return s
}

func (s *GizmoSet) all() [][]GizmoAxis {
	return [][]GizmoAxis{s.Position, s.Trigger, s.Rotation, s.Scale, s.PositionLocal}
}

// ClearSelection drops the selected flag on every handle of every mode.
func (s *GizmoSet) ClearSelection() {
	for _, set := range s.all() {
		for i := range set {
			set[i].Selected = false
		}
	}
}

// selected returns the index of the single selected handle in set. ok is false
// when none or more than one is selected.
func selected(set []GizmoAxis) (int, bool) {
	idx := -1
	for i := range set {
		if !set[i].Selected {
			continue
		}
		if idx != -1 {
			return -1, false
		}
		idx = i
	}
	return idx, idx != -1
}

func countSelected(sets ...[]GizmoAxis) int {
	n := 0
	for _, set := range sets {
		for i := range set {
			if set[i].Selected {
				n++
			}
		}
	}
	return n
}
