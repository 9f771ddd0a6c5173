package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSoundManagerGracefulDegradation verifies calls before Initialize are no-ops
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Beep(400, 120*time.Millisecond)
	sm.SetMuted(true)
	sm.Beep(400, 120*time.Millisecond)
	sm.Cleanup()
}

// TestSoundManagerInitialization tolerates missing audio devices in CI
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected without an audio device): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}
	sm.Beep(400, 10*time.Millisecond)
}

func TestMuteFlag(t *testing.T) {
	sm := NewSoundManager()
	if sm.Muted() {
		t.Error("Expected unmuted by default")
	}
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected muted after SetMuted(true)")
	}
}

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Streamer error: %v", err)
	}
	return out
}

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 120 * time.Millisecond

	tone, err := Tone(sr, 400, d)
	if err != nil {
		t.Fatalf("Tone failed: %v", err)
	}

	samples := drain(t, tone)
	if len(samples) != sr.N(d) {
		t.Errorf("Expected %d samples, got %d", sr.N(d), len(samples))
	}

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
		if s[0] != s[1] {
			t.Fatal("Expected identical channels")
		}
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Expected peak in (0,1], got %v", peak)
	}

	// Fades bring both ends to silence
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	if math.Abs(samples[len(samples)-1][0]) > peak/10 {
		t.Errorf("Expected faded last sample, got %v", samples[len(samples)-1][0])
	}
}

func TestToneRejectsAboveNyquist(t *testing.T) {
	if _, err := Tone(beep.SampleRate(44100), 30000, time.Millisecond); err == nil {
		t.Error("Expected error for frequency above Nyquist")
	}
}
