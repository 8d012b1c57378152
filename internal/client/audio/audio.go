// Package audio wraps the platform audio tooling: capture via an external
// recorder process, playback via an external player, and local speech
// synthesis. Implementations are exec-based; interfaces exist so services
// and tests can substitute fakes.
package audio

import (
	"context"
	"errors"
)

var (
	// ErrBusy means a capture is already in progress on this recorder.
	ErrBusy = errors.New("recorder busy")

	// ErrNotRecording means Stop was called with no capture in progress.
	ErrNotRecording = errors.New("not recording")

	// ErrCapture means the capture process could not be started or failed
	// (missing binary, no input device, permission denied).
	ErrCapture = errors.New("audio capture failed")

	// ErrNoAudio means the capture process produced no usable file.
	ErrNoAudio = errors.New("no audio captured")

	// ErrPlayback means the resource could not be fetched or played.
	ErrPlayback = errors.New("audio playback failed")

	// ErrSpeech means local speech synthesis failed.
	ErrSpeech = errors.New("speech synthesis failed")
)

// Recorder captures one take at a time.
type Recorder interface {
	// Start begins capturing. Fails with ErrBusy when a take is already in
	// progress and ErrCapture when the input resource cannot be acquired.
	Start(ctx context.Context) error

	// Stop finalizes the capture and returns the local file path. Fails
	// with ErrNoAudio when nothing was captured.
	Stop(ctx context.Context) (string, error)
}

// Player starts playback of a local path or remote URL. A new Play replaces
// any playback already in progress.
type Player interface {
	Play(ctx context.Context, uri string) error
	Stop()
}

// Speaker reads text aloud on the local device.
type Speaker interface {
	Say(ctx context.Context, text string) error
}
