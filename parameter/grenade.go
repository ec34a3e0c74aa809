package parameter

// Grenade lifecycle, distances in world units, times in seconds
const (
	// GrenadeFuse is the fuse a freshly cocked grenade starts with
	GrenadeFuse = 1.5

	// GrenadeThrowSpeed is the release speed along the wielder's heading (units/s)
	GrenadeThrowSpeed = 620.0

	// GrenadeDrag is the linear drag coefficient k in dv = -k*v*dt (1/s)
	GrenadeDrag = 1.4

	// GrenadeHitRadius is the character collision radius used for bounces
	GrenadeHitRadius = 16.0

	// GrenadeHoldDistance is how far ahead of the wielder an armed grenade is held
	GrenadeHoldDistance = 20.0

	// GrenadeSprite is drawn while armed or flying
	GrenadeSprite = "weapons/pineapple"
)

// Explosion
const (
	// ExplosionRange is the blast radius; characters at or beyond it are unharmed
	ExplosionRange = 144.0

	// ExplosionLethalRange is the inner ring receiving high damage (inclusive)
	ExplosionLethalRange = 64.0

	ExplosionHighDamage  = 105.0
	ExplosionLowDamage   = 55.0
	ExplosionPenetration = 0.85

	// ExplosionLifetime is how long the detonated grenade lingers for drawing
	ExplosionLifetime = 0.5

	// ExplosionExpandingTime is the initial span during which the mesh scales up
	ExplosionExpandingTime = 0.1

	// ExplosionMeshRays is the number of rays cast for the visibility polygon
	ExplosionMeshRays = 120

	// ExplosionUVJitter bounds the per-ray texture angle jitter (radians)
	ExplosionUVJitter = 0.02

	ExplosionTexture = "weapons/explosion1"
)
