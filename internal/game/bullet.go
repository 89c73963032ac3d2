package game

const (
	BulletRadius   = 2.0
	BulletSpeed    = 300.0 // units/s, added to the firing ship's velocity
	BulletLifetime = 1.5   // seconds
	BulletColor    = "#202020"
)

// Bullet is a short-lived projectile fired by a ship
type Bullet struct {
	body
	Life float64 // seconds remaining
}

// NewBullet creates a bullet at pos. It is not added to the world.
func NewBullet(w *World, pos, vel Vec, life float64) *Bullet {
	b := &Bullet{
		body: body{
			world:  w,
			vel:    vel,
			radius: BulletRadius,
			color:  BulletColor,
		},
		Life: life,
	}
	b.SetPos(pos)
	return b
}

func (b *Bullet) Kind() Kind { return KindBullet }

// Move advances the bullet and burns down its lifetime
func (b *Bullet) Move(delta float64) {
	b.body.Move(delta)
	b.Life -= delta
}

// Expired reports whether the lifetime has run out
func (b *Bullet) Expired() bool {
	return b.Life <= 0
}

// CollideWith never resolves anything; asteroids handle bullet hits.
func (b *Bullet) CollideWith(Entity) bool {
	return false
}

func (b *Bullet) Draw(c Canvas) {
	b.fillCircle(c)
}
