package parameter

// Sandbox characters
const (
	// PlayerMoveSpeed in world units per second
	PlayerMoveSpeed = 160.0

	// PlayerTurnStep is the rotation applied per key press (radians)
	PlayerTurnStep = 0.19634954084936207 // pi/16

	// PlayerStartGrenades is the supply a new player carries
	PlayerStartGrenades = 5

	// CharacterHealth is full HP for the player and enemies
	CharacterHealth = 100.0

	PlayerArmour = 20.0
	EnemyArmour  = 0.0
)

// Sandbox level defaults
const (
	DefaultLevelWidth  = 32
	DefaultLevelHeight = 32
	DefaultLevelFile   = "level.tds"
)
