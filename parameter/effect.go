package parameter

// Fall path generation
const (
	// SwayCountMin/Max bound the randomized sway waypoint count per fall
	SwayCountMin = 2
	SwayCountMax = 4

	// SwayAmountMin/Max bound the lateral offset (columns) per sway point
	SwayAmountMin = 1
	SwayAmountMax = 3

	// SpeedJitterMin/Max bound the per-flake speed factor applied to the
	// configured movement speed
	SpeedJitterMin = 0.7
	SpeedJitterMax = 1.3

	// FastForwardSpeedMult is the speed factor for direct-to-floor paths
	// given to in-flight flakes when a phase transition accelerates them
	FastForwardSpeedMult = 5.0

	// DefaultMovementSpeed is the base fall speed in cells per tick
	DefaultMovementSpeed = 0.1
)

// Bottom pile
const (
	// PileCap is the maximum stacked height per column; arrivals at a
	// full column are discarded
	PileCap = 5
)

// Background spawn scheduling
const (
	// SteadySpawnInterval/Min/Max drive count-gated snowfall: a batch of
	// [Min,Max] flakes every Interval ticks
	SteadySpawnInterval = 2
	SteadySpawnMin      = 3
	SteadySpawnMax      = 6

	// BuildSpawnInterval/Chance gate background snow while the effect is
	// still building its text or art
	BuildSpawnInterval = 8
	BuildSpawnChance   = 0.10

	// TreeBuildSpawnChance is the heavier build-phase gate used by the
	// falling-tree variant
	TreeBuildSpawnChance = 0.25

	// RevealedSpawnInterval/Chance apply once the build is complete
	RevealedSpawnInterval = 3
	RevealedSpawnChance   = 0.15

	// FinaleSpeedMult scales flake fall speed after the reveal finishes
	FinaleSpeedMult = 1.5
)

// Build-phase pending queue drains
const (
	// SnowReleaseMin/Max flakes released per tick by the plain snow effect
	SnowReleaseMin = 1
	SnowReleaseMax = 3

	// TextReleaseInterval is the tick gap between single text-flake
	// releases in the accumulating variants
	TextReleaseInterval = 1

	// TreeReleaseMin/Max characters released per tick while the tree
	// builds bottom-up
	TreeReleaseMin = 5
	TreeReleaseMax = 10
)

// Phase timing
const (
	// FadeHoldTicks is how long the finished scene is held before
	// background spawning stops
	FadeHoldTicks = 600

	// SteadyDurationTicks caps the fixed-duration snowfall variant
	// (10 seconds at the standard 60 ticks per second)
	SteadyDurationTicks = 600

	// RevealIntervalTicks is the delay between consecutive ornament
	// light-ups during the reveal
	RevealIntervalTicks = 10

	// SlideInSpeedMult scales the entrance speed of the secondary text
	// sliding in from the canvas edge
	SlideInSpeedMult = 3.0
)
