package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvFighter    = "Fighter"
	ResolvProjectile = "Projectile"
)
