package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/audio"
	"github.com/lixenwraith/rats/core"
	"github.com/lixenwraith/rats/engine"
	"github.com/lixenwraith/rats/input"
	"github.com/lixenwraith/rats/render"
)

// fpsSmoothing weights the newest frame in the displayed FPS average
const fpsSmoothing = 0.1

type options struct {
	cfg   engine.Config
	debug bool
	quiet bool
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: engine.DefaultConfig()}

	fs := flag.NewFlagSet("rats", flag.ContinueOnError)
	fs.IntVar(&opts.cfg.Rows, "rows", opts.cfg.Rows, "maze height in cells")
	fs.IntVar(&opts.cfg.Cols, "cols", opts.cfg.Cols, "maze width in cells")
	fs.IntVar(&opts.cfg.Density, "density", opts.cfg.Density, "percentage of maze walls kept (0-100)")
	fs.IntVar(&opts.cfg.Factories, "factories", opts.cfg.Factories, "number of rat factories")
	fs.IntVar(&opts.cfg.RatDamage, "rat-damage", opts.cfg.RatDamage, "health lost per rat attack")
	fs.IntVar(&opts.cfg.BratDamage, "brat-damage", opts.cfg.BratDamage, "health lost per brat attack")
	fs.IntVar(&opts.cfg.FPS, "fps", opts.cfg.FPS, "frame rate cap")
	fs.Int64Var(&opts.cfg.Seed, "seed", 0, "random seed, 0 for time based")
	fs.BoolVar(&opts.debug, "debug", false, "write debug logs to logs/rats.log")
	fs.BoolVar(&opts.quiet, "quiet", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return opts, errors.Wrap(err, "bad flags")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		log.WithError(err).Error("game aborted")
		fmt.Fprintf(os.Stderr, "rats: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic Recovery: restore the terminal before printing the trace
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()
	defer screen.Fini()
	screen.HideCursor()

	sessionOpts := []engine.Option{}
	if !opts.quiet {
		sm := audio.NewSoundManager(nil)
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			sessionOpts = append(sessionOpts, engine.WithSound(sm))
		}
	}

	session, err := engine.NewSession(opts.cfg, sessionOpts...)
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewInputHandler(session)
	handler.OnResize(func(w, h int) {
		screen.Sync()
		renderer.Resize(w, h)
	})

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameInterval := time.Second / time.Duration(opts.cfg.FPS)
	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	fps := session.Registry().Floats.Get("fps")
	last := time.Now()
	avg := float64(opts.cfg.FPS)

	for {
		select {
		case ev := <-eventChan:
			handler.HandleEvent(ev)

		case now := <-frameTicker.C:
			handler.Tick(now)
			session.Frame()
			if session.Done() {
				log.WithField("score", session.Score()).Info("player quit")
				return nil
			}

			if dt := now.Sub(last).Seconds(); dt > 0 {
				avg += fpsSmoothing * (1/dt - avg)
				fps.Set(avg)
			}
			last = now

			renderer.Draw(session.Snapshot(), session.Registry())
		}
	}
}
