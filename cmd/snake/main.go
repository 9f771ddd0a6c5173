package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Thank you for playing")
}

func run(args []string) error {
	if err := loadEnv(".env"); err != nil {
		return err
	}
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(opts.logPath)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := log.WithFields(log.Fields{
		"session": uuid.NewString(),
		"seed":    seed,
	})

	cfg := engine.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[run] init screen")
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	core.SetResetHandler(fini)
	defer fini()

	tw, th := screen.Size()
	if w, h := cfg.ScreenSize(); tw < w || th < h {
		logger.WithFields(log.Fields{
			"terminal": fmt.Sprintf("%dx%d", tw, th),
			"needed":   fmt.Sprintf("%dx%d", w, h),
		}).Warn("terminal smaller than playfield, output is clipped")
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	sound.SetMuted(opts.mute)

	stats := status.NewRegistry()
	state := engine.NewGameState(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	scene := engine.NewScene(render.NewRenderer(screen), cfg)
	listener := input.NewListener(screen, input.DefaultKeyTable(), constants.IntentBufferSize)
	loop := engine.NewLoop(cfg, state, scene, sound, listener.Intents(), stats, logger)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(sigCtx)
	ctx, cancel := context.WithCancel(gctx)
	defer cancel()

	loopDone := make(chan struct{})
	g.Go(core.Guard(func() error {
		defer close(loopDone)
		defer cancel()
		return loop.Run(ctx)
	}))
	g.Go(core.Guard(func() error {
		return listener.Run(ctx)
	}))
	// Closing the screen unblocks the listener's PollEvent
	g.Go(func() error {
		<-loopDone
		fini()
		return nil
	})

	err = g.Wait()
	stats.Ints.Get(status.KeyDropped).Store(listener.Dropped())
	logger.WithFields(log.Fields(stats.Snapshot())).Info("session finished")
	return err
}
