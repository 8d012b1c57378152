package cli

import (
	"context"
	"errors"
	"log"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/audio"
	"github.com/eartalk/eartalk-cli/internal/client/services"
)

func (a *App) Record(ctx context.Context) error {
	if err := a.recordings.Start(ctx); err != nil {
		switch {
		case errors.Is(err, services.ErrRecordingInProgress):
			log.Printf("Already recording, type 'stop' to finish")
		case errors.Is(err, audio.ErrCapture):
			log.Printf("Cannot access the microphone: %s", err.Error())
		default:
			log.Printf("Recording failed to start: %s", err.Error())
		}
		return err
	}

	log.Printf("Recording... type 'stop' to finish")
	return nil
}

func (a *App) StopRecord(ctx context.Context) error {
	err := a.recordings.Stop(ctx)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotRecording):
			log.Printf("Nothing to stop, type 'record' first")
		case errors.Is(err, audio.ErrNoAudio):
			log.Printf("No audio captured")
		case errors.Is(err, api.ErrNotAuthenticated):
			log.Printf("Recording saved, but you must log in before uploading; type 'retry' after login")
		case errors.Is(err, api.ErrNetwork):
			log.Printf("Upload failed: server unreachable; type 'retry' to try again")
		default:
			if apiErr := api.AsAPIError(err); apiErr != nil {
				log.Printf("Upload failed (%d): %s", apiErr.Status, apiErr.Detail)
			} else {
				log.Printf("Upload failed: %s", err.Error())
			}
		}
		return err
	}

	a.printResult()
	return nil
}

func (a *App) RetryUpload(ctx context.Context) error {
	if err := a.recordings.Upload(ctx); err != nil {
		if errors.Is(err, services.ErrNothingToUpload) {
			log.Printf("Nothing to retry")
		} else if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Upload failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Upload failed: %s", err.Error())
		}
		return err
	}

	a.printResult()
	return nil
}

func (a *App) printResult() {
	sess := a.recordings.Session()
	log.Printf("Transcript: %s", sess.ResultText)
	log.Printf("Synthesized audio: %s (type 'play' to listen)", sess.ResultAudioURL)
}
