package game

// Kind identifies which World slice an entity lives in
type Kind int

const (
	KindAsteroid Kind = iota
	KindBullet
	KindShip
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindShip:
		return "ship"
	}
	return "unknown"
}

// Entity is any live object in the World. The unexported method closes the
// set of implementations to *Asteroid, *Bullet and *Ship.
type Entity interface {
	Kind() Kind
	Pos() Vec
	Vel() Vec
	Radius() float64
	Move(delta float64)
	IsCollidedWith(other Entity) bool
	// CollideWith resolves a collision against other and reports whether
	// it removed or mutated anything. A true result ends the sweep.
	CollideWith(other Entity) bool
	Draw(c Canvas)

	base() *body
}

// body is the state shared by every entity variant
type body struct {
	world  *World // not owned
	pos    Vec
	vel    Vec
	radius float64
	color  string
}

func (b *body) base() *body { return b }

// Pos returns the current position
func (b *body) Pos() Vec { return b.pos }

// Vel returns the current velocity in units per second
func (b *body) Vel() Vec { return b.vel }

// Radius returns the collision radius
func (b *body) Radius() float64 { return b.radius }

// World returns the world this entity was created for
func (b *body) World() *World { return b.world }

// SetPos places the entity, wrapped onto the playfield
func (b *body) SetPos(p Vec) {
	if b.world != nil {
		p = b.world.Wrap(p)
	}
	b.pos = p
}

// SetVel replaces the velocity
func (b *body) SetVel(v Vec) { b.vel = v }

// Move advances the position by vel*delta and wraps it
func (b *body) Move(delta float64) {
	b.SetPos(b.pos.Add(b.vel.Scale(delta)))
}

// IsCollidedWith reports whether the two circles overlap. An entity never
// collides with itself.
func (b *body) IsCollidedWith(other Entity) bool {
	if isNil(other) {
		return false
	}
	o := other.base()
	if o == b {
		return false
	}
	return CheckCollision(b.pos.X, b.pos.Y, b.radius, o.pos.X, o.pos.Y, o.radius)
}

func (b *body) fillCircle(c Canvas) {
	c.SetFillStyle(b.color)
	c.FillCircle(b.pos.X, b.pos.Y, b.radius)
}

// isNil catches both a nil interface and a typed nil pointer
func isNil(e Entity) bool {
	if e == nil {
		return true
	}
	switch v := e.(type) {
	case *Asteroid:
		return v == nil
	case *Bullet:
		return v == nil
	case *Ship:
		return v == nil
	}
	return e.base() == nil
}
