package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flurry/audio"
	"github.com/lixenwraith/flurry/config"
	"github.com/lixenwraith/flurry/core"
	"github.com/lixenwraith/flurry/effect"
	"github.com/lixenwraith/flurry/engine"
)

func main() {
	effectName := flag.String("effect", "snow", "effect to run: "+strings.Join(effect.Names(), ", "))
	configPath := flag.String("config", "", "path to YAML options file")
	text := flag.String("text", "Happy Holidays", "input text; use \\n for line breaks")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	fps := flag.Int("fps", 60, "ticks per second")
	noSound := flag.Bool("no-sound", false, "disable the completion chime")
	flag.Parse()

	opts := config.Default()
	if *configPath != "" {
		var err error
		opts, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	chime := &audio.Chime{}
	if !*noSound {
		if err := chime.Init(); err != nil {
			// Non-fatal, the animation runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	lines := strings.Split(strings.ReplaceAll(*text, "\\n", "\n"), "\n")
	if err := run(screen, *effectName, lines, rng, opts, *fps, chime); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives one effect to completion or until the user quits.
func run(screen tcell.Screen, name string, lines []string, rng *rand.Rand, opts config.Options, fps int, chime *audio.Chime) error {
	width, height := screen.Size()
	canvas := core.Canvas{Left: 0, Right: width - 1, Top: height - 1, Bottom: 0}

	stage := engine.NewStage(canvas)
	baseRow := canvas.Bottom + (canvas.Height()-len(lines))/2
	stage.AddText(lines, baseRow)

	seq, ok := effect.New(name, stage, rng, opts)
	if !ok {
		return fmt.Errorf("unknown effect %q, have: %s", name, strings.Join(effect.Names(), ", "))
	}

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	chimed := false
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			alive := seq.Tick()
			if !chimed && seq.Phase() >= effect.PhaseFading {
				chime.Play()
				chimed = true
			}
			draw(screen, canvas, stage.Frame())
			if !alive {
				// hold the last frame a moment before tearing down
				select {
				case <-quit:
				case <-time.After(time.Second):
				}
				return nil
			}
		}
	}
}

// draw paints one composed frame. Canvas rows grow upward, screen rows
// grow downward.
func draw(screen tcell.Screen, canvas core.Canvas, cells []engine.Cell) {
	screen.Clear()
	for _, c := range cells {
		x := c.Coord.Column - canvas.Left
		y := canvas.Top - c.Coord.Row
		screen.SetContent(x, y, c.Rune, nil, c.Style)
	}
	screen.Show()
}
