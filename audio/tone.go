package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/snake/constants"
	"github.com/pkg/errors"
)

// Tone returns a finite sine beep with short linear fades against clicks
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "[Tone] %.1f Hz at %d Hz sample rate", freq, sr)
	}

	total := sr.N(d)
	env := &envelope{
		s:     beep.Take(total, sine),
		total: total,
		fade:  min(sr.N(constants.AudioFadeWindow), total/2),
	}
	return &effects.Volume{Streamer: env, Base: 2, Volume: constants.AudioVolume}, nil
}

// envelope ramps gain up over the first fade samples and down over the last
type envelope struct {
	s     beep.Streamer
	pos   int
	total int
	fade  int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.fade > 0 {
			if e.pos < e.fade {
				gain = float64(e.pos) / float64(e.fade)
			}
			if rem := e.total - e.pos; rem < e.fade {
				gain = min(gain, float64(rem)/float64(e.fade))
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}
