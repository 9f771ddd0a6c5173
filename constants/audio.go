package constants

import "time"

// Item feedback beep
const (
	// FeedbackPitchHz is the first beep of a round
	FeedbackPitchHz = 400.0

	// FeedbackPitchStep raises pitch by 1/36 octave per item
	FeedbackPitchStep = 1.0 / 36.0

	FeedbackDuration = 120 * time.Millisecond
)

// Speaker setup
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioFadeWindow   = 5 * time.Millisecond
	AudioVolume       = -1.5 // log2 gain applied to the sine tone
)
