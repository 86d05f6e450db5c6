// Package speech defines the text-to-speech collaborator used to produce
// audio assets for stored pairs.
package speech

import (
	"context"
	"errors"
)

// ErrSynthesisFailed is returned when the synthesizer cannot produce audio.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

// Synthesizer converts text to MP3 audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
