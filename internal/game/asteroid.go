package game

import (
	"math"

	"go.uber.org/zap"
)

const (
	AsteroidColor     = "#505050"
	AsteroidFragments = 2
)

// Size is an asteroid size class. Hitting a Size above SizeSmall splits it.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

var asteroidClasses = [...]struct {
	radius float64
	speed  float64 // units/s
}{
	SizeSmall:  {radius: 8, speed: 100},
	SizeMedium: {radius: 15, speed: 80},
	SizeLarge:  {radius: 25, speed: 60},
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return "unknown"
}

// Radius returns the collision radius for this size class
func (s Size) Radius() float64 {
	return asteroidClasses[s.clamp()].radius
}

// Speed returns the drift speed for this size class
func (s Size) Speed() float64 {
	return asteroidClasses[s.clamp()].speed
}

func (s Size) clamp() Size {
	if s < SizeSmall {
		return SizeSmall
	}
	if s > SizeLarge {
		return SizeLarge
	}
	return s
}

// Asteroid drifts in a straight line and wraps at the edges
type Asteroid struct {
	body
	Size Size
}

// NewAsteroid creates an asteroid of the given size at pos, drifting in a
// random direction. It is not added to the world.
func NewAsteroid(w *World, pos Vec, size Size) *Asteroid {
	size = size.clamp()
	a := &Asteroid{
		body: body{
			world:  w,
			radius: size.Radius(),
			color:  AsteroidColor,
		},
		Size: size,
	}
	a.SetPos(pos)
	a.vel = FromAngle(w.randFloat()*2*math.Pi, size.Speed())
	return a
}

func (a *Asteroid) Kind() Kind { return KindAsteroid }

// CollideWith relocates a ship that flew into the asteroid, or destroys the
// asteroid and the bullet that hit it. Other pairings are ignored.
func (a *Asteroid) CollideWith(other Entity) bool {
	switch o := other.(type) {
	case *Ship:
		o.Relocate()
		return true
	case *Bullet:
		w := a.world
		if err := w.Remove(a); err != nil {
			w.log.Warn("bullet hit detached asteroid", zap.Error(err))
			return false
		}
		if err := w.Remove(o); err != nil {
			w.log.Warn("detached bullet hit asteroid", zap.Error(err))
		}
		for _, f := range a.Fragments() {
			if err := w.Add(f); err != nil {
				w.log.Warn("add fragment", zap.Error(err))
			}
		}
		return true
	}
	return false
}

// Fragments returns the pieces this asteroid breaks into, moving apart in
// opposite directions. Small asteroids leave nothing behind.
func (a *Asteroid) Fragments() []*Asteroid {
	if a.Size <= SizeSmall {
		return nil
	}
	next := a.Size - 1
	angle := a.world.randFloat() * 2 * math.Pi
	frags := make([]*Asteroid, 0, AsteroidFragments)
	for i := 0; i < AsteroidFragments; i++ {
		f := NewAsteroid(a.world, a.pos, next)
		f.vel = FromAngle(angle+float64(i)*2*math.Pi/AsteroidFragments, next.Speed())
		frags = append(frags, f)
	}
	return frags
}

func (a *Asteroid) Draw(c Canvas) {
	a.fillCircle(c)
}
