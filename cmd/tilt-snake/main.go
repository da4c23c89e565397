package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/tilt-snake/audio"
	"github.com/lixenwraith/tilt-snake/config"
	"github.com/lixenwraith/tilt-snake/constants"
	"github.com/lixenwraith/tilt-snake/engine"
	"github.com/lixenwraith/tilt-snake/input"
	"github.com/lixenwraith/tilt-snake/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Enable debug logging to logs/")
	inputFlag = flag.String("input", "", "Input mode: stick (keys), tilt (mouse)")
	muteFlag  = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Load .env before reading configuration from the environment
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables only")
	}
	cfg := config.Load()
	if *inputFlag == config.ModeStick || *inputFlag == config.ModeTilt {
		cfg.Input.Mode = *inputFlag
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it vanishes with the alternate screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTILT-SNAKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	display := terminal.NewDisplay(screen)

	sound := audio.NewSoundManager()
	sound.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Muted {
		sound.ToggleMute()
	}
	var notice string
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		notice = "audio unavailable"
	} else {
		defer sound.Cleanup()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(display, sound, rng, engine.Config{
		StartInterval: cfg.Game.StartInterval,
		MinInterval:   cfg.Game.MinInterval,
		Speedup:       cfg.Game.Speedup,
	})
	clock := engine.NewPausableClock()

	// Steering chain: source -> filter -> driver -> engine
	mapping := input.AxisMapping{
		InvertX:  cfg.Input.InvertX,
		InvertY:  cfg.Input.InvertY,
		SwapAxes: cfg.Input.SwapAxes,
	}

	var keyStick *terminal.KeyStick
	var mouseTilt *terminal.MouseTilt
	var driver *input.Driver

	if cfg.Input.Mode == config.ModeTilt {
		mouseTilt = terminal.NewMouseTilt()
		if err := mouseTilt.Init(); err != nil {
			log.Printf("Tilt source unavailable: %v (falling back to keys)", err)
			notice = "tilt unavailable, using keys"
			mouseTilt = nil
		} else {
			fcfg := input.DefaultTiltConfig()
			fcfg.Alpha = cfg.Input.Alpha
			fcfg.DeadZone = cfg.Input.DeadZone
			fcfg.Trigger = cfg.Input.Trigger
			fcfg.Mapping = mapping
			filter := input.NewTiltFilter(mouseTilt, fcfg)
			filter.Calibrate(constants.CalibrationSamples, constants.CalibrationInterval)
			driver = input.NewDriver(filter, eng)
			screen.EnableMouse()
		}
	}

	// Key steering is the stick mode and the fallback when tilt is missing
	if driver == nil {
		keyStick = terminal.NewKeyStick(clock, constants.KeyStickHold)
		fcfg := input.DefaultStickConfig()
		fcfg.DeadZone = cfg.Input.DeadZone
		fcfg.Trigger = cfg.Input.Trigger
		fcfg.Mapping = mapping
		filter := input.NewStickFilter(keyStick, fcfg)
		if err := keyStick.Init(); err != nil {
			log.Printf("Stick source unavailable: %v (steering disabled)", err)
			notice = "input source unavailable"
			keyStick = nil
		} else {
			driver = input.NewDriver(filter, eng)
		}
	}

	resetLimiter := rate.NewLimiter(rate.Limit(constants.ResetPerSecond), constants.ResetBurst)

	display.SetNotice(notice)
	eng.Reset(clock.Now())

	eventChan := make(chan tcell.Event, 256)
	// Event polling uses a raw goroutine as it blocks on the terminal
	go func() {
		// Panic recovery for the poller goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized, clean exit
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameInterval)
	defer frameTicker.Stop()

	paused := false

	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch terminal.DecodeAction(tev) {
				case terminal.ActionQuit:
					return
				case terminal.ActionReset:
					if resetLimiter.Allow() {
						eng.Reset(clock.Now())
					}
				case terminal.ActionPause:
					if paused {
						clock.Resume()
					} else {
						clock.Pause()
					}
					paused = !paused
				case terminal.ActionMute:
					sound.ToggleMute()
				}
				if d, ok := terminal.DecodeDirection(tev); ok && keyStick != nil {
					keyStick.Press(d)
				}
			case *tcell.EventMouse:
				if mouseTilt != nil {
					mx, my := tev.Position()
					mouseTilt.Move(display.TiltAt(mx, my))
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			display.SetStatus(statusLine(eng, paused, sound.Muted()))
			if paused {
				// Hold the simulation but keep the screen alive
				display.Present()
				continue
			}
			if driver != nil {
				driver.Poll()
			}
			eng.Update(clock.Now())
		}
	}
}

func statusLine(eng *engine.Engine, paused, muted bool) string {
	s := fmt.Sprintf("LENGTH %d  STEP %dms", eng.Length(), eng.StepInterval().Milliseconds())
	if eng.Over() {
		s += "  GAME OVER [r restarts]"
	}
	if paused {
		s += "  PAUSED"
	}
	if muted {
		s += "  MUTED"
	}
	return s
}
