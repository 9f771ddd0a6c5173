package constants

// IntentBufferSize is the capacity of the listener -> loop channel
// Intents beyond it are dropped; the loop drains every wake
const IntentBufferSize = 32
