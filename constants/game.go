package constants

import "time"

// Entity update cadence. An entity is evaluated once its next-update time has passed.
const (
	PlayerUpdateInterval  = 50 * time.Millisecond
	RatUpdateInterval     = 100 * time.Millisecond
	BratUpdateInterval    = 75 * time.Millisecond
	FactoryUpdateInterval = 250 * time.Millisecond
	BulletUpdateInterval  = 10 * time.Millisecond
)

// Player firing
const (
	// FireInterval is the minimum time between shots (8 per second)
	FireInterval = time.Second / 8

	// BulletHarmlessTicks is how many bullet ticks after firing a bullet cannot hit the player
	BulletHarmlessTicks = 4
)

// Scoring
const (
	RatScore     = 50
	BratScore    = 25
	FactoryScore = 250
)

// Player vitals
const (
	MaxHealth    = 100
	InitialLives = 3
)

// Enemy defaults, overridable through engine.Config
const (
	DefaultRatDamage  = 10
	DefaultBratDamage = 5
)

// Wandering and targeting
const (
	// WanderMin and WanderMax bound the random walk distance, inclusive
	WanderMin = 5
	WanderMax = 15

	// DetectionRadiusSquared is the squared torus distance inside which enemies chase
	DetectionRadiusSquared = 400

	// BlastRadiusSquared is the squared distance around an exploding player that clears hazards
	BlastRadiusSquared = 64
)

// Spawning
const (
	// RatSpawnInterval is how often factories are asked for a new batch of rats
	RatSpawnInterval = 15 * time.Second

	// RatsPerFactory scales each batch by the configured factory count
	RatsPerFactory = 1

	// BratSpawnInterval is how often rats are asked to breed
	BratSpawnInterval = 20 * time.Second

	// RatsPerBrat is the live rat count per requested brat
	RatsPerBrat = 2

	// FactoryPlayerClearance is the minimum squared distance between a factory and the player start
	FactoryPlayerClearance = 250

	// FactorySpacing is the minimum squared distance between two factories
	FactorySpacing = 25

	// MaxPlacementAttempts bounds the random search for factory positions
	MaxPlacementAttempts = 10000
)

// Presentation
const (
	// SuperBoomFrames is how many frames the screen-wide flash lasts
	SuperBoomFrames = 12

	// DefaultFPS caps the frame loop
	DefaultFPS = 60
)
