package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/status"
	log "github.com/sirupsen/logrus"
)

// Feedback is the audible side of the output surface
type Feedback interface {
	Beep(freqHz float64, d time.Duration)
}

// Loop drives ticks at the state's current delay and owns all state mutation and drawing
type Loop struct {
	cfg      Config
	state    *GameState
	scene    *Scene
	feedback Feedback
	intents  <-chan input.Intent
	stats    *status.Registry
	logger   *log.Entry

	// living toggles the death blink between snake color and flash color
	living bool
}

// NewLoop wires the collaborators; feedback may be nil
func NewLoop(cfg Config, state *GameState, scene *Scene, feedback Feedback,
	intents <-chan input.Intent, stats *status.Registry, logger *log.Entry) *Loop {
	return &Loop{
		cfg:      cfg,
		state:    state,
		scene:    scene,
		feedback: feedback,
		intents:  intents,
		stats:    stats,
		logger:   logger,
	}
}

// Run blocks until an exit intent, a closed intent channel, or ctx cancellation
// The caller restores the terminal after Run returns
func (l *Loop) Run(ctx context.Context) error {
	l.scene.Redraw(l.state)
	l.stats.Ints.Get(status.KeyRounds).Add(1)
	l.publish()
	l.logRound("round started")

	timer := time.NewTimer(l.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.exit("context done")
			return nil

		case in, ok := <-l.intents:
			if !ok {
				l.exit("input closed")
				return nil
			}
			exit, reschedule := l.handle(in)
			if exit {
				return nil
			}
			if reschedule {
				resetTimer(timer, l.interval())
			}

		case <-timer.C:
			l.step()
			timer.Reset(l.interval())
		}
	}
}

// handle applies one intent; reschedule asks for a fresh timer after a phase change
func (l *Loop) handle(in input.Intent) (exit, reschedule bool) {
	switch in.Type {
	case input.IntentQuit:
		l.exit("quit")
		return true, false

	case input.IntentDirection:
		l.state.SetDirection(in.Dir)

	case input.IntentRestart:
		if l.state.Restart() {
			l.living = false
			l.stats.Ints.Get(status.KeyRounds).Add(1)
			l.scene.Redraw(l.state)
			l.publish()
			l.logRound("round started")
			return false, true
		}

	case input.IntentRedraw:
		l.scene.Redraw(l.state)
		l.scene.Sync()
	}
	return false, false
}

// step runs one timer expiry for the current phase
func (l *Loop) step() {
	switch l.state.Phase() {
	case PhasePlaying:
		res := l.state.Tick()
		l.stats.Ints.Get(status.KeyTicks).Add(1)

		if res.Grew {
			if l.feedback != nil {
				l.feedback.Beep(res.Pitch, l.cfg.FeedbackDuration)
			}
			l.stats.Ints.Get(status.KeyApples).Add(1)
			l.stats.RaiseMax(status.KeyBestScore, int64(l.state.Score()))
		}

		l.scene.Frame(l.state, res)

		switch {
		case res.Died:
			l.stats.Ints.Get(status.KeyDeaths).Add(1)
			l.logRound("snake died")
		case res.BoardFull:
			l.scene.GameOverFrame(l.state)
			l.logRound("board full")
		}
		l.publish()

	case PhaseDying:
		l.scene.DeathFrame(l.state, l.living)
		l.living = !l.living
	}
}

// interval is the wait until the next step
func (l *Loop) interval() time.Duration {
	if l.state.Phase() == PhasePlaying {
		return l.state.Delay()
	}
	return l.cfg.FlashInterval
}

func (l *Loop) exit(reason string) {
	l.state.Exit()
	l.publish()
	l.logger.WithFields(log.Fields{
		"reason": reason,
		"round":  l.state.Round(),
		"score":  l.state.Score(),
	}).Info("game loop exiting")
}

// publish mirrors the state into the metrics registry
func (l *Loop) publish() {
	l.stats.Strings.Get(status.KeyPhase).Store(l.state.Phase().String())
	l.stats.Bools.Get(status.KeyAlive).Store(l.state.Phase() == PhasePlaying)
	l.stats.Ints.Get(status.KeyDelayMs).Store(l.state.Delay().Milliseconds())
}

func (l *Loop) logRound(msg string) {
	l.logger.WithFields(log.Fields{
		"round":  l.state.Round(),
		"phase":  l.state.Phase().String(),
		"score":  l.state.Score(),
		"length": l.state.Len(),
		"delay":  l.state.Delay().String(),
	}).Info(msg)
}

// resetTimer stops and drains t before rearming it
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
