// Package game is the simulation core: a toroidal playfield of ships,
// asteroids and bullets advanced one tick at a time.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
)

const (
	DefaultWidth        = 400.0
	DefaultHeight       = 400.0
	DefaultNumAsteroids = 10
	DefaultBackground   = "#DFE6FF"
	DefaultFPS          = 32
)

var (
	// ErrUnknownEntityKind means the value is nil or not one of the
	// package's entity variants. It is always a caller defect.
	ErrUnknownEntityKind = errors.New("unknown entity kind")
	// ErrNotFound means Remove was asked for an entity the world does not hold.
	ErrNotFound = errors.New("entity not found")
)

// World owns every live entity and advances the simulation one tick at a time.
// It is not safe for concurrent use; the driver loop serializes all calls.
type World struct {
	asteroids []*Asteroid
	bullets   []*Bullet
	ships     []*Ship

	width, height float64
	background    string
	numAsteroids  int
	seed          bool
	bulletTTL     float64

	rng         *rand.Rand
	log         *zap.Logger
	onCollision func(a, b Entity)
}

// Option configures a World at construction
type Option func(*World)

// WithDimensions sets the playfield size. Non-positive values are ignored.
func WithDimensions(width, height float64) Option {
	return func(w *World) {
		if width > 0 && height > 0 {
			w.width, w.height = width, height
		}
	}
}

// WithAsteroidCount sets how many asteroids AddAsteroids seeds
func WithAsteroidCount(n int) Option {
	return func(w *World) {
		if n >= 0 {
			w.numAsteroids = n
		}
	}
}

// WithoutAsteroids skips seeding asteroids in NewWorld
func WithoutAsteroids() Option {
	return func(w *World) { w.seed = false }
}

// WithBackground sets the fill color Draw paints behind the entities
func WithBackground(color string) Option {
	return func(w *World) {
		if color != "" {
			w.background = color
		}
	}
}

// WithBulletLifetime sets how long fired bullets live, in seconds
func WithBulletLifetime(seconds float64) Option {
	return func(w *World) {
		if seconds > 0 {
			w.bulletTTL = seconds
		}
	}
}

// WithRand replaces the random source used for positions and directions
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithLogger sets the logger for lifecycle and collision events
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithCollisionHandler registers fn to be called after each resolved collision
func WithCollisionHandler(fn func(a, b Entity)) Option {
	return func(w *World) { w.onCollision = fn }
}

// NewWorld creates a World and seeds its asteroids
func NewWorld(opts ...Option) *World {
	w := &World{
		width:        DefaultWidth,
		height:       DefaultHeight,
		background:   DefaultBackground,
		numAsteroids: DefaultNumAsteroids,
		seed:         true,
		bulletTTL:    BulletLifetime,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if w.seed {
		w.AddAsteroids()
	}
	return w
}

// Add files e into the slice for its kind
func (w *World) Add(e Entity) error {
	if isNil(e) {
		return fmt.Errorf("add: %w: nil", ErrUnknownEntityKind)
	}
	switch v := e.(type) {
	case *Asteroid:
		w.asteroids = append(w.asteroids, v)
	case *Bullet:
		w.bullets = append(w.bullets, v)
	case *Ship:
		w.ships = append(w.ships, v)
	default:
		return fmt.Errorf("add: %w: %T", ErrUnknownEntityKind, e)
	}
	w.log.Debug("entity added", zapKind("kind", e), zap.Int("total", w.Len()))
	return nil
}

// Remove drops e from the slice for its kind. An entity the world does not
// hold yields ErrNotFound and leaves every slice untouched.
func (w *World) Remove(e Entity) error {
	if isNil(e) {
		return fmt.Errorf("remove: %w: nil", ErrUnknownEntityKind)
	}
	var ok bool
	switch v := e.(type) {
	case *Asteroid:
		w.asteroids, ok = without(w.asteroids, v)
	case *Bullet:
		w.bullets, ok = without(w.bullets, v)
	case *Ship:
		w.ships, ok = without(w.ships, v)
	default:
		return fmt.Errorf("remove: %w: %T", ErrUnknownEntityKind, e)
	}
	if !ok {
		return fmt.Errorf("remove %s: %w", e.Kind(), ErrNotFound)
	}
	w.log.Debug("entity removed", zapKind("kind", e), zap.Int("total", w.Len()))
	return nil
}

func without[T comparable](s []T, v T) ([]T, bool) {
	i := slices.Index(s, v)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// AddAsteroids seeds the configured number of large asteroids at random positions
func (w *World) AddAsteroids() {
	for i := 0; i < w.numAsteroids; i++ {
		// cannot fail: *Asteroid is a known kind
		_ = w.Add(NewAsteroid(w, w.RandomPosition(), SizeLarge))
	}
}

// AddShip creates a ship at a random position and adds it
func (w *World) AddShip() *Ship {
	ship := NewShip(w, w.RandomPosition())
	_ = w.Add(ship)
	return ship
}

// AllEntities returns a fresh slice of ships, then asteroids, then bullets.
// Callers may hold it across Add and Remove.
func (w *World) AllEntities() []Entity {
	all := make([]Entity, 0, w.Len())
	for _, s := range w.ships {
		all = append(all, s)
	}
	for _, a := range w.asteroids {
		all = append(all, a)
	}
	for _, b := range w.bullets {
		all = append(all, b)
	}
	return all
}

// Asteroids returns a copy of the asteroid slice
func (w *World) Asteroids() []*Asteroid { return slices.Clone(w.asteroids) }

// Bullets returns a copy of the bullet slice
func (w *World) Bullets() []*Bullet { return slices.Clone(w.bullets) }

// Ships returns a copy of the ship slice
func (w *World) Ships() []*Ship { return slices.Clone(w.ships) }

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.asteroids) + len(w.bullets) + len(w.ships)
}

// Step advances the simulation by delta seconds: move everything, then
// resolve at most one collision.
func (w *World) Step(delta float64) {
	w.MoveObjects(delta)
	w.CheckCollisions()
}

// MoveObjects moves every entity by its velocity and wraps it onto the field
func (w *World) MoveObjects(delta float64) {
	for _, e := range w.AllEntities() {
		e.Move(delta)
	}
}

// ReapExpired removes bullets whose lifetime has elapsed and returns how many
func (w *World) ReapExpired() int {
	n := 0
	for _, b := range w.Bullets() {
		if b.Expired() && w.Remove(b) == nil {
			n++
		}
	}
	return n
}

// Draw paints the background and then every entity. It does not mutate the world.
func (w *World) Draw(c Canvas) {
	c.ClearRect(0, 0, w.width, w.height)
	c.SetFillStyle(w.background)
	c.FillRect(0, 0, w.width, w.height)
	for _, e := range w.AllEntities() {
		e.Draw(c)
	}
}

// IsOutOfBounds reports whether p lies outside [0, width] x [0, height]
func (w *World) IsOutOfBounds(p Vec) bool {
	return p.X < 0 || p.Y < 0 || p.X > w.width || p.Y > w.height
}

// Wrap maps p onto the playfield, each axis independently
func (w *World) Wrap(p Vec) Vec {
	return Vec{Wrap(p.X, w.width), Wrap(p.Y, w.height)}
}

// RandomPosition returns a uniform point in [0, width) x [0, height)
func (w *World) RandomPosition() Vec {
	return Vec{w.width * w.randFloat(), w.height * w.randFloat()}
}

// Dimensions returns the playfield size
func (w *World) Dimensions() (width, height float64) {
	return w.width, w.height
}

// Background returns the background fill color
func (w *World) Background() string {
	return w.background
}

func (w *World) randFloat() float64 {
	return w.rng.Float64()
}

func zapKind(key string, e Entity) zap.Field {
	return zap.Stringer(key, e.Kind())
}
