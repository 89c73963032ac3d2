package game

import (
	"math"
	"testing"
)

func TestAsteroidStraightLine(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{200, 200}, SizeLarge)
	start := a.Pos()
	v := a.Vel()

	a.Move(1.0)

	expected := start.Add(v)
	if math.Abs(a.Pos().X-expected.X) > 0.01 || math.Abs(a.Pos().Y-expected.Y) > 0.01 {
		t.Errorf("asteroid should move in straight line: expected %+v got %+v", expected, a.Pos())
	}
}

func TestAsteroidSizeClasses(t *testing.T) {
	w := newTestWorld()
	for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge} {
		a := NewAsteroid(w, Vec{100, 100}, size)
		if a.Radius() != size.Radius() {
			t.Errorf("%s: expected radius %g, got %g", size, size.Radius(), a.Radius())
		}
		if math.Abs(a.Vel().Len()-size.Speed()) > 1e-9 {
			t.Errorf("%s: expected speed %g, got %g", size, size.Speed(), a.Vel().Len())
		}
		if a.Kind() != KindAsteroid {
			t.Errorf("unexpected kind %s", a.Kind())
		}
	}
	if SizeLarge.Radius() <= SizeMedium.Radius() || SizeMedium.Radius() <= SizeSmall.Radius() {
		t.Error("radius should shrink with size class")
	}
	if Size(99).Radius() != SizeLarge.Radius() {
		t.Error("out of range sizes clamp to the nearest class")
	}
}

func TestAsteroidFragments(t *testing.T) {
	w := newTestWorld()
	if frags := NewAsteroid(w, Vec{50, 50}, SizeSmall).Fragments(); len(frags) != 0 {
		t.Errorf("small asteroids should not split, got %d fragments", len(frags))
	}

	a := NewAsteroid(w, Vec{50, 50}, SizeLarge)
	frags := a.Fragments()
	if len(frags) != AsteroidFragments {
		t.Fatalf("expected %d fragments, got %d", AsteroidFragments, len(frags))
	}
	for _, f := range frags {
		if f.Size != SizeMedium {
			t.Errorf("expected medium fragment, got %s", f.Size)
		}
		if f.Pos() != a.Pos() {
			t.Errorf("fragment should start at the parent position, got %+v", f.Pos())
		}
	}
	sum := frags[0].Vel().Add(frags[1].Vel())
	if sum.Len() > 1e-9 {
		t.Errorf("fragments should fly apart in opposite directions, velocity sum %+v", sum)
	}
}

func TestBulletBreaksAsteroid(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{100, 100}, SizeLarge)
	b := NewBullet(w, Vec{100, 100}, Vec{}, 1)
	mustAdd(t, w, a)
	mustAdd(t, w, b)

	if !a.CollideWith(b) {
		t.Fatal("bullet hit should be handled")
	}
	if len(w.Bullets()) != 0 {
		t.Error("bullet should be removed")
	}
	rocks := w.Asteroids()
	if len(rocks) != 2 {
		t.Fatalf("expected 2 fragments, got %d asteroids", len(rocks))
	}
	for _, r := range rocks {
		if r == a {
			t.Error("the hit asteroid should be gone")
		}
		if r.Size != SizeMedium {
			t.Errorf("expected medium fragments, got %s", r.Size)
		}
	}
}

func TestBulletDestroysSmallAsteroid(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{100, 100}, SizeSmall)
	b := NewBullet(w, Vec{101, 100}, Vec{}, 1)
	mustAdd(t, w, a)
	mustAdd(t, w, b)

	w.Step(0)

	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d entities", w.Len())
	}
}

func TestAsteroidRelocatesShip(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{100, 100}, SizeLarge)
	s := NewShip(w, Vec{100, 100})
	s.SetVel(Vec{50, 0})
	mustAdd(t, w, a)
	mustAdd(t, w, s)

	w.Step(0)

	if s.Vel() != (Vec{}) {
		t.Error("relocated ship should be stopped")
	}
	if len(w.Ships()) != 1 || len(w.Asteroids()) != 1 {
		t.Error("ship hit should not remove anything")
	}
}

func TestAsteroidIgnoresAsteroid(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{100, 100}, SizeLarge)
	b := NewAsteroid(w, Vec{100, 100}, SizeLarge)
	if a.CollideWith(b) {
		t.Error("asteroids should pass through each other")
	}
}

func TestAsteroidDetachedHit(t *testing.T) {
	w := newTestWorld()
	a := NewAsteroid(w, Vec{100, 100}, SizeLarge)
	b := NewBullet(w, Vec{100, 100}, Vec{}, 1)
	mustAdd(t, w, b)

	if a.CollideWith(b) {
		t.Error("an asteroid outside the world cannot be hit")
	}
	if len(w.Bullets()) != 1 || len(w.Asteroids()) != 0 {
		t.Error("a failed hit must not change the world")
	}
}
