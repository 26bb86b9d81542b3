package effect

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/flurry/engine"
)

// Phase names one stage of an effect's run.
type Phase int

const (
	PhaseBuilding Phase = iota
	PhaseSettling
	PhaseRevealing
	PhaseFading
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseSettling:
		return "settling"
	case PhaseRevealing:
		return "revealing"
	case PhaseFading:
		return "fading"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// TerminationRule selects how a run decides it has ended.
type TerminationRule int

const (
	// TerminateOnBuildComplete ends the run once the pending queue is
	// empty and every released character is at rest
	TerminateOnBuildComplete TerminationRule = iota

	// TerminateAfterMaxTicks ends the run at a fixed tick count
	TerminateAfterMaxTicks

	// TerminateWhenDrained ends the run once spawning has stopped after
	// the hold period and no background flake remains in flight
	TerminateWhenDrained
)

// DrainPolicy controls how the pending queue empties during BUILDING.
type DrainPolicy struct {
	MinPerTick int
	MaxPerTick int

	// Interval is the tick gap between releases; zero releases every tick.
	Interval int

	// RandomOrder pops a random pending character instead of the front.
	RandomOrder bool
}

// Config parameterizes the shared sequencer for one effect variant. The
// four effects differ only in this data, not in structure.
type Config struct {
	BaseSpeed float64

	Drain DrainPolicy

	// BuildSpawn gates background snow until the build completes;
	// RevealedSpawn applies afterwards. FinaleSpawn, when non-zero,
	// replaces RevealedSpawn once the reveal finishes, with flake speed
	// scaled by FinaleSpeedMult.
	BuildSpawn      SpawnPolicy
	RevealedSpawn   SpawnPolicy
	FinaleSpawn     SpawnPolicy
	FinaleSpeedMult float64

	// PileStep of zero disables the pile entirely.
	PileCap  int
	PileStep int

	// Settle inserts the SETTLING/REVEALING stages between build and
	// fade; RevealInterval is the tick delay between highlight light-ups.
	Settle         bool
	RevealInterval int

	// HoldTicks delays the spawn stop after the scene completes
	// (TerminateWhenDrained only). MaxTicks caps the whole run
	// (TerminateAfterMaxTicks only).
	HoldTicks int
	MaxTicks  int

	Terminate TerminationRule

	// AccelerateOnComplete fast-forwards in-flight background flakes to
	// the floor when the build completes.
	AccelerateOnComplete bool
}

// Hooks are the effect-specific actions the sequencer drives. All visual
// content stays opaque to the sequencer: it only asks the effect to spawn,
// light up, or slide in characters it never inspects.
type Hooks struct {
	// SpawnBackground creates, activates, and shows one background flake.
	SpawnBackground func(speedMult float64) *engine.Character

	// IsHighlight marks the build characters revealed one at a time
	// during REVEALING; Highlight switches one to its lit scene.
	IsHighlight func(ch *engine.Character) bool
	Highlight   func(ch *engine.Character)

	// RevealSecondary makes the secondary text visible with its entrance
	// motion and returns its characters, watched until they come to rest.
	RevealSecondary func() []*engine.Character
}

// Sequencer runs one effect: it drains the pending queue, schedules
// background snow, settles landings into the pile, and walks the phase
// machine until the run ends. One Tick is one frame.
type Sequencer struct {
	cfg   Config
	hooks Hooks
	rng   *rand.Rand
	stage *engine.Stage

	phase Phase
	ticks int

	pending []*engine.Character
	build   []*engine.Character
	flight  []*engine.Character

	pile  *Pile
	sched *Scheduler

	drainTimer   int
	holdCount    int
	spawnStopped bool
	speedMult    float64

	revealQueue    []*engine.Character
	revealTimer    int
	secondary      []*engine.Character
	secondaryShown bool
}

// NewSequencer creates a sequencer over stage. pending holds characters
// released during BUILDING (each already carrying its activated fall
// path); prebuilt holds characters placed at rest during construction.
// When there is nothing to build the sequencer advances past BUILDING
// immediately, so hold counting starts on the first tick.
func NewSequencer(stage *engine.Stage, rng *rand.Rand, cfg Config, hooks Hooks, pending, prebuilt []*engine.Character) *Sequencer {
	s := &Sequencer{
		cfg:       cfg,
		hooks:     hooks,
		rng:       rng,
		stage:     stage,
		pending:   pending,
		build:     prebuilt,
		sched:     NewScheduler(rng, cfg.BuildSpawn),
		speedMult: 1,
	}
	if cfg.PileStep != 0 {
		s.pile = NewPile(stage.Canvas.Bottom, cfg.PileCap, cfg.PileStep)
	}
	if len(s.pending) == 0 && s.atRest(s.build) {
		s.completeBuild()
	}
	return s
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Ticks returns how many ticks have run.
func (s *Sequencer) Ticks() int {
	return s.ticks
}

// Tick advances the simulation one frame: queue drain, then background
// spawn, then landing checks, then termination evaluation, then motion.
// It reports false once the run has ended; further calls keep reporting
// false without advancing.
func (s *Sequencer) Tick() bool {
	if s.finished() {
		return false
	}
	s.ticks++

	s.drainPending()
	s.advancePhase()
	s.spawnBackground()
	s.settleLandings()
	if s.finished() {
		return false
	}
	s.stage.Tick()
	return true
}

func (s *Sequencer) drainPending() {
	if s.phase != PhaseBuilding || len(s.pending) == 0 {
		return
	}
	if s.drainTimer > 0 {
		s.drainTimer--
		return
	}
	span := s.cfg.Drain.MaxPerTick - s.cfg.Drain.MinPerTick + 1
	n := s.cfg.Drain.MinPerTick + s.rng.Intn(span)
	for range n {
		if len(s.pending) == 0 {
			break
		}
		idx := 0
		if s.cfg.Drain.RandomOrder {
			idx = s.rng.Intn(len(s.pending))
		}
		ch := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		s.stage.SetVisibility(ch, true)
		s.build = append(s.build, ch)
	}
	s.drainTimer = s.cfg.Drain.Interval
}

func (s *Sequencer) advancePhase() {
	switch s.phase {
	case PhaseBuilding:
		if len(s.pending) > 0 || !s.atRest(s.build) {
			return
		}
		s.completeBuild()

	case PhaseSettling:
		var q []*engine.Character
		if s.hooks.IsHighlight != nil {
			for _, ch := range s.build {
				if s.hooks.IsHighlight(ch) {
					q = append(q, ch)
				}
			}
		}
		sort.SliceStable(q, func(i, j int) bool {
			return q[i].Motion.CurrentCoord().Row < q[j].Motion.CurrentCoord().Row
		})
		s.revealQueue = q
		s.phase = PhaseRevealing

	case PhaseRevealing:
		if len(s.revealQueue) > 0 {
			if s.revealTimer > 0 {
				s.revealTimer--
				return
			}
			ch := s.revealQueue[0]
			s.revealQueue = s.revealQueue[1:]
			if s.hooks.Highlight != nil {
				s.hooks.Highlight(ch)
			}
			s.revealTimer = s.cfg.RevealInterval
			return
		}
		if s.hooks.RevealSecondary != nil && !s.secondaryShown {
			s.secondary = s.hooks.RevealSecondary()
			s.secondaryShown = true
			return
		}
		if !s.atRest(s.secondary) {
			return
		}
		if (s.cfg.FinaleSpawn != SpawnPolicy{}) {
			s.sched.SetPolicy(s.cfg.FinaleSpawn)
		}
		if s.cfg.FinaleSpeedMult > 0 {
			s.speedMult = s.cfg.FinaleSpeedMult
		}
		s.phase = PhaseFading

	case PhaseFading:
		if s.cfg.Terminate != TerminateWhenDrained {
			return
		}
		s.holdCount++
		if s.holdCount > s.cfg.HoldTicks {
			s.spawnStopped = true
			s.phase = PhaseDone
		}
	}
}

// completeBuild runs the build-complete transition: accelerate stragglers,
// switch the spawn regime, and enter the next configured phase.
func (s *Sequencer) completeBuild() {
	if s.cfg.AccelerateOnComplete {
		for _, ch := range s.flight {
			if ch.Motion.ActivePath() == nil {
				continue
			}
			fast := NewFastFallPath(s.cfg.BaseSpeed, ch.Motion.CurrentCoord(), s.stage.Canvas.Bottom)
			ch.Motion.ActivatePath(fast)
		}
	}
	s.sched.SetPolicy(s.cfg.RevealedSpawn)

	switch {
	case s.cfg.Terminate == TerminateOnBuildComplete:
		s.phase = PhaseDone
	case s.cfg.Settle:
		s.phase = PhaseSettling
	default:
		s.phase = PhaseFading
	}
}

func (s *Sequencer) spawnBackground() {
	if s.spawnStopped || s.hooks.SpawnBackground == nil {
		return
	}
	n := s.sched.Tick()
	for range n {
		if ch := s.hooks.SpawnBackground(s.speedMult); ch != nil {
			s.flight = append(s.flight, ch)
		}
	}
}

// settleLandings processes every background flake whose path completed
// since the last tick. Landed flakes stack into the pile and leave the
// in-flight set, or are removed when the column is full. Once spawning has
// stopped, landings are removed unconditionally so the run can drain.
func (s *Sequencer) settleLandings() {
	if len(s.flight) == 0 {
		return
	}
	kept := s.flight[:0]
	for _, ch := range s.flight {
		if ch.Motion.ActivePath() != nil {
			kept = append(kept, ch)
			continue
		}
		if s.spawnStopped || s.pile == nil {
			s.stage.SetVisibility(ch, false)
			continue
		}
		if rest, ok := s.pile.Settle(ch.Motion.CurrentCoord().Column); ok {
			ch.Motion.SetCoordinate(rest)
			continue
		}
		s.stage.SetVisibility(ch, false)
	}
	s.flight = kept
}

func (s *Sequencer) finished() bool {
	switch s.cfg.Terminate {
	case TerminateAfterMaxTicks:
		return s.ticks >= s.cfg.MaxTicks
	case TerminateWhenDrained:
		return s.spawnStopped && len(s.flight) == 0
	default:
		return s.phase == PhaseDone
	}
}

func (s *Sequencer) atRest(chars []*engine.Character) bool {
	for _, ch := range chars {
		if ch.Motion.ActivePath() != nil {
			return false
		}
	}
	return true
}
