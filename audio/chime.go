// Package audio plays the short completion chime. Audio is strictly
// optional: initialization failure leaves the chime silent, never fatal.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime is a one-note completion cue.
type Chime struct {
	ready bool
}

// Init brings up the speaker. The error is informational; a Chime whose
// Init failed just stays silent.
func (c *Chime) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		c.ready = true
	}
	return err
}

// Play sounds a short high sine tone. No-op when the speaker is not up.
func (c *Chime) Play() {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(150*time.Millisecond), sine))
}
