package cube

// Apply mutates c in place according to m and returns c for chaining.
// Composite moves apply their expansion (reversed and inverted when the
// composite's direction flag is false); this is the only place a
// composite's expansion is executed without first being materialized by
// Ops.Expand.
func (c *Cube) Apply(m Move) *Cube {
	switch m.Kind {
	case KindFace:
		applyFaceTurn(c, m.Face, m.Clockwise)
	case KindWide:
		applyFaceTurn(c, m.Face, m.Clockwise)
		slice, invert := wideSliceFor(m.Face)
		rotateRing(c, sliceRings[slice], m.Clockwise != invert)
	case KindSlice:
		rotateRing(c, sliceRings[m.Slice], m.Clockwise)
	case KindRotation:
		applyRotation(c, m.Axis, m.Clockwise)
	case KindComposite:
		applyCompositeDirect(c, m)
	}
	return c
}

func applyFaceTurn(c *Cube, f FaceName, clockwise bool) {
	switch f {
	case FaceFront:
		c.Front.Rotate(clockwise)
	case FaceBack:
		c.Back.Rotate(clockwise)
	case FaceUp:
		c.Up.Rotate(clockwise)
	case FaceDown:
		c.Down.Rotate(clockwise)
	case FaceLeft:
		c.Left.Rotate(clockwise)
	case FaceRight:
		c.Right.Rotate(clockwise)
	}
	rotateRing(c, rings[f], clockwise)
}

// applyRotation reorients the whole cube: outer face + both adjacent
// slices, composed so that colors shift but no new permutation beyond
// viewpoint is introduced. Per the near/far slice-sign convention (see
// wideSliceFor), the far face and its slice both invert relative to the
// near face's direction.
func applyRotation(c *Cube, axis RotationAxis, clockwise bool) {
	switch axis {
	case AxisX: // follows Right
		applyFaceTurn(c, FaceRight, clockwise)
		rotateRing(c, sliceRings[Middle], !clockwise)
		applyFaceTurn(c, FaceLeft, !clockwise)
	case AxisY: // follows Up
		applyFaceTurn(c, FaceUp, clockwise)
		rotateRing(c, sliceRings[Equator], !clockwise)
		applyFaceTurn(c, FaceDown, !clockwise)
	case AxisZ: // follows Front
		applyFaceTurn(c, FaceFront, clockwise)
		rotateRing(c, sliceRings[Standing], clockwise)
		applyFaceTurn(c, FaceBack, !clockwise)
	}
}

func applyCompositeDirect(c *Cube, m Move) {
	if m.Clockwise {
		for _, sub := range m.Expansion {
			c.Apply(sub)
		}
		return
	}
	for i := len(m.Expansion) - 1; i >= 0; i-- {
		c.Apply(m.Expansion[i].Rev())
	}
}
