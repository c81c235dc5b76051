package cube

import "testing"

func u(cw bool) Move  { return FaceMove(FaceUp, cw) }
func r(cw bool) Move  { return FaceMove(FaceRight, cw) }
func f(cw bool) Move  { return FaceMove(FaceFront, cw) }
func m(cw bool) Move  { return SliceMove(Middle, cw) }

func TestOpsWeight(t *testing.T) {
	ops := NewOps(u(true), r(true), r(false))
	if got := ops.Weight(); got != 3 {
		t.Errorf("Weight() = %d, want 3", got)
	}

	comp := CompositeMove("Sexy", true, []Move{r(true), u(true), r(false), u(false)})
	withComposite := NewOps(u(true), comp)
	if got := withComposite.Weight(); got != 5 {
		t.Errorf("Weight() with composite = %d, want 5", got)
	}
}

func TestOpsLastRepeat(t *testing.T) {
	ops := NewOps(u(true), u(true))
	if _, ok := ops.LastRepeat(); !ok {
		t.Errorf("expected LastRepeat to report a repeat")
	}
	ops = NewOps(u(true), r(true))
	if _, ok := ops.LastRepeat(); ok {
		t.Errorf("expected LastRepeat to report no repeat")
	}
}

func TestOpsReverseCancels(t *testing.T) {
	ops := NewOps(u(true), r(true), f(false), m(true))
	c := Solved()
	c = ops.Apply(c)
	c = ops.Reverse().Apply(c)
	if c != Solved() {
		t.Errorf("apply then apply(reverse) did not return to solved")
	}
}

func TestShortenCancelsPair(t *testing.T) {
	ops := NewOps(u(true), u(false))
	got := ops.Shorten()
	if got.Len() != 0 {
		t.Errorf("Shorten() = %v, want empty", got)
	}
}

func TestShortenCollapsesTriple(t *testing.T) {
	ops := NewOps(u(true), u(true), u(true))
	got := ops.Shorten()
	want := NewOps(u(false))
	if got.Len() != 1 || !got.Moves()[0].Equal(want.Moves()[0]) {
		t.Errorf("Shorten() = %v, want %v", got, want)
	}
}

func TestShortenIdempotent(t *testing.T) {
	ops := NewOps(u(true), u(true), u(true), r(true), r(false), f(true))
	once := ops.Shorten()
	twice := once.Shorten()
	if once.String() != twice.String() {
		t.Errorf("Shorten not idempotent: %v vs %v", once, twice)
	}
}

func TestShortenPreservesSemantics(t *testing.T) {
	ops := NewOps(u(true), u(true), u(true), r(true), r(false), f(true), f(true))
	c1 := Solved()
	c1 = ops.Apply(c1)
	c2 := Solved()
	c2 = ops.Shorten().Apply(c2)
	if c1 != c2 {
		t.Errorf("shorten changed semantics: %v vs %v", c1, c2)
	}
}

func TestExpandPreservesSemantics(t *testing.T) {
	comp := CompositeMove("Sexy", true, []Move{r(true), u(true), r(false), u(false)})
	ops := NewOps(comp, f(true))
	c1 := Solved()
	c1 = ops.Apply(c1)
	c2 := Solved()
	c2 = ops.Expand().Apply(c2)
	if c1 != c2 {
		t.Errorf("expand changed semantics: %v vs %v", c1, c2)
	}
}

func TestExpandReversedComposite(t *testing.T) {
	comp := CompositeMove("Sexy", true, []Move{r(true), u(true), r(false), u(false)})
	inv := comp.Rev()
	ops := NewOps(comp, inv)
	c1 := Solved()
	c1 = ops.Apply(c1)
	if c1 != Solved() {
		t.Errorf("composite then its inverse did not return to solved via direct Apply")
	}

	c2 := Solved()
	c2 = ops.Expand().Apply(c2)
	if c2 != Solved() {
		t.Errorf("composite then its inverse did not return to solved via Expand")
	}
}

func TestOpsStringFormatsComposites(t *testing.T) {
	comp := CompositeMove("Sexy", true, []Move{r(true), u(true), r(false), u(false)})
	ops := NewOps(u(true), comp, comp.Rev())
	got := ops.String()
	want := "U (Sexy) (Sexy)'"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
