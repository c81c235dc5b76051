package cube

import "fmt"

// MoveKind tags the variant of a Move. Move is a closed sum type:
// polymorphism is by switching on Kind, never by interface dispatch.
type MoveKind int

const (
	KindFace MoveKind = iota
	KindWide
	KindSlice
	KindRotation
	KindComposite
)

// FaceName names one of the six outer faces.
type FaceName int

const (
	FaceUp FaceName = iota
	FaceDown
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

var faceNames = [...]string{"U", "D", "F", "B", "L", "R"}

func (f FaceName) String() string { return faceNames[f] }

// SliceName names one of the three middle-layer slices.
type SliceName int

const (
	Middle SliceName = iota
	Equator
	Standing
)

var sliceNames = [...]string{"M", "E", "S"}

func (s SliceName) String() string { return sliceNames[s] }

// RotationAxis names a whole-cube rotation axis.
type RotationAxis int

const (
	AxisX RotationAxis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a RotationAxis) String() string { return axisNames[a] }

// Move is a tagged variant over face turns, wide turns, slice turns,
// whole-cube rotations, and named composites. Clockwise is meaningful for
// every kind except Composite, where it instead records the composite's
// direction (true = forward, false = inverted).
type Move struct {
	Kind      MoveKind
	Face      FaceName
	Slice     SliceName
	Axis      RotationAxis
	Clockwise bool

	// Composite-only fields. Name identifies the macro; Expansion is the
	// ordered primitive moves it stands for when run forward (Clockwise
	// true). Two composites are equal only if name, direction, and
	// expansion all match.
	Name       string
	Expansion  []Move
}

func FaceMove(f FaceName, clockwise bool) Move {
	return Move{Kind: KindFace, Face: f, Clockwise: clockwise}
}

func WideMove(f FaceName, clockwise bool) Move {
	return Move{Kind: KindWide, Face: f, Clockwise: clockwise}
}

func SliceMove(s SliceName, clockwise bool) Move {
	return Move{Kind: KindSlice, Slice: s, Clockwise: clockwise}
}

func RotationMove(a RotationAxis, clockwise bool) Move {
	return Move{Kind: KindRotation, Axis: a, Clockwise: clockwise}
}

func CompositeMove(name string, clockwise bool, expansion []Move) Move {
	return Move{Kind: KindComposite, Name: name, Clockwise: clockwise, Expansion: expansion}
}

// Rev returns the inverse of m: same kind, negated direction. Composite
// inversion does not eagerly reverse the expansion - that happens only
// when the move is applied (Cube.Apply) or materialized by Ops.Expand.
func (m Move) Rev() Move {
	r := m
	r.Clockwise = !m.Clockwise
	return r
}

// Equal compares two moves for value equality, including a full
// name+direction+expansion comparison for composites, since two
// composites sharing a name but not an expansion are distinct values.
func (m Move) Equal(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case KindFace, KindWide:
		return m.Face == other.Face && m.Clockwise == other.Clockwise
	case KindSlice:
		return m.Slice == other.Slice && m.Clockwise == other.Clockwise
	case KindRotation:
		return m.Axis == other.Axis && m.Clockwise == other.Clockwise
	case KindComposite:
		if m.Name != other.Name || m.Clockwise != other.Clockwise {
			return false
		}
		if len(m.Expansion) != len(other.Expansion) {
			return false
		}
		for i := range m.Expansion {
			if !m.Expansion[i].Equal(other.Expansion[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders Singmaster (+ WCA wide) notation. Composites render as
// (Name) or (Name)'.
func (m Move) String() string {
	switch m.Kind {
	case KindFace:
		if m.Clockwise {
			return m.Face.String()
		}
		return m.Face.String() + "'"
	case KindWide:
		s := lowerFace(m.Face)
		if m.Clockwise {
			return s
		}
		return s + "'"
	case KindSlice:
		if m.Clockwise {
			return m.Slice.String()
		}
		return m.Slice.String() + "'"
	case KindRotation:
		if m.Clockwise {
			return m.Axis.String()
		}
		return m.Axis.String() + "'"
	case KindComposite:
		if m.Clockwise {
			return fmt.Sprintf("(%s)", m.Name)
		}
		return fmt.Sprintf("(%s)'", m.Name)
	default:
		return "?"
	}
}

func lowerFace(f FaceName) string {
	switch f {
	case FaceUp:
		return "u"
	case FaceDown:
		return "d"
	case FaceFront:
		return "f"
	case FaceBack:
		return "b"
	case FaceLeft:
		return "l"
	case FaceRight:
		return "r"
	default:
		return "?"
	}
}

// wideSliceFor reports which slice pairs with a wide turn of f, and
// whether the slice's direction flag must be flipped relative to f's, per
// the fixed adjacency: M follows L, E follows D, S follows F. The "near"
// face in each axis pairs the slice with the same sign; the "far" face
// pairs it inverted.
func wideSliceFor(f FaceName) (slice SliceName, invert bool) {
	switch f {
	case FaceLeft:
		return Middle, false
	case FaceRight:
		return Middle, true
	case FaceDown:
		return Equator, false
	case FaceUp:
		return Equator, true
	case FaceFront:
		return Standing, false
	case FaceBack:
		return Standing, true
	default:
		panic(fmt.Sprintf("cube: no slice for face %v", f))
	}
}
