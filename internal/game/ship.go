package game

import (
	"math"

	"go.uber.org/zap"
)

const (
	ShipRadius   = 15.0
	ShipMaxSpeed = 250.0 // units/s
	ShipColor    = "#FF0000"
)

// Ship is the player-controlled entity. The input collaborator holds the
// pointer returned by World.AddShip and steers it between steps.
type Ship struct {
	body
	Heading float64 // radians, 0 faces +X
}

// NewShip creates a stationary ship at pos facing +X. It is not added to the world.
func NewShip(w *World, pos Vec) *Ship {
	s := &Ship{
		body: body{
			world:  w,
			radius: ShipRadius,
			color:  ShipColor,
		},
	}
	s.SetPos(pos)
	return s
}

func (s *Ship) Kind() Kind { return KindShip }

// Rotate turns the ship by dr radians. A non-finite dr is ignored.
func (s *Ship) Rotate(dr float64) {
	if math.IsNaN(dr) || math.IsInf(dr, 0) {
		return
	}
	s.Heading = NormalizeAngle(s.Heading + dr)
}

// Thrust accelerates along the heading by amount units/s
func (s *Ship) Thrust(amount float64) {
	s.Power(FromAngle(s.Heading, amount))
}

// Power adds a raw impulse to the velocity, capped at ShipMaxSpeed
func (s *Ship) Power(impulse Vec) {
	s.vel = s.vel.Add(impulse)
	speed := s.vel.Len()
	if capped := Clamp(speed, 0, ShipMaxSpeed); capped < speed {
		s.vel = s.vel.Scale(capped / speed)
	}
}

// Fire spawns a bullet at the nose travelling along the heading and adds it
// to the world. Returns nil if the world refused the bullet.
func (s *Ship) Fire() *Bullet {
	w := s.world
	dir := FromAngle(s.Heading, 1)
	b := NewBullet(w, s.Nose(), s.vel.Add(dir.Scale(BulletSpeed)), w.bulletTTL)
	if err := w.Add(b); err != nil {
		w.log.Warn("fire", zap.Error(err))
		return nil
	}
	return b
}

// Relocate moves the ship to a random position and stops it
func (s *Ship) Relocate() {
	s.SetPos(s.world.RandomPosition())
	s.vel = Vec{}
}

// Nose returns the tip of the ship along its heading
func (s *Ship) Nose() Vec {
	return s.world.Wrap(s.pos.Add(FromAngle(s.Heading, s.radius)))
}

// CollideWith never resolves anything; asteroids handle ship hits.
func (s *Ship) CollideWith(Entity) bool {
	return false
}

func (s *Ship) Draw(c Canvas) {
	s.fillCircle(c)
	tip := s.pos.Add(FromAngle(s.Heading, s.radius*1.5))
	c.StrokeLine(s.pos.X, s.pos.Y, tip.X, tip.Y)
}
