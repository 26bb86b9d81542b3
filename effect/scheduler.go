package effect

import "math/rand"

// SpawnPolicy describes one background-spawn regime. A policy is either
// count-gated (MaxCount > 0: spawn a batch of [MinCount, MaxCount] every
// time the timer elapses) or probability-gated (spawn a single flake with
// probability Chance when the timer elapses). The zero policy spawns
// nothing.
type SpawnPolicy struct {
	Interval int
	Chance   float64
	MinCount int
	MaxCount int
}

// Scheduler gates the introduction of background flakes on a countdown
// timer with a per-regime policy.
type Scheduler struct {
	rng    *rand.Rand
	policy SpawnPolicy
	timer  int
}

// NewScheduler creates a scheduler with an elapsed timer, so the first
// tick may spawn immediately.
func NewScheduler(rng *rand.Rand, policy SpawnPolicy) *Scheduler {
	return &Scheduler{rng: rng, policy: policy}
}

// SetPolicy switches the active regime. The running timer is kept, so a
// regime change never causes an immediate burst.
func (s *Scheduler) SetPolicy(policy SpawnPolicy) {
	s.policy = policy
}

// Tick advances the timer and returns how many flakes to spawn this tick,
// possibly zero. Spawning ticks reset the timer to the regime interval and
// do not also decrement it.
func (s *Scheduler) Tick() int {
	if s.timer > 0 {
		s.timer--
		return 0
	}
	s.timer = s.policy.Interval

	switch {
	case s.policy.MaxCount > 0:
		span := s.policy.MaxCount - s.policy.MinCount + 1
		return s.policy.MinCount + s.rng.Intn(span)
	case s.policy.Chance > 0 && s.rng.Float64() < s.policy.Chance:
		return 1
	default:
		return 0
	}
}
