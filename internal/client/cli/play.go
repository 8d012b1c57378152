package cli

import (
	"context"
	"log"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/services"
)

// Play starts playback. With no identifier it plays the synthesized audio
// of the last finished take; with an identifier it looks the recording up
// on the backend and plays its processed audio.
func (a *App) Play(ctx context.Context, identifier string) error {
	if identifier != "" {
		return a.playByIdentifier(ctx, identifier)
	}

	sess := a.recordings.Session()
	if sess.State != services.StateDone || sess.ResultAudioURL == "" {
		log.Printf("No audio to play, finish a recording first or use 'play <identifier>'")
		return nil
	}
	return a.playURI(ctx, sess.ResultAudioURL)
}

func (a *App) playByIdentifier(ctx context.Context, identifier string) error {
	rec, err := a.accounts.Recording(ctx, identifier)
	if err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Lookup failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Lookup failed: %s", err.Error())
		}
		return err
	}
	if rec.ProcessedFilepath == "" {
		log.Printf("Recording %s has no synthesized audio", identifier)
		return nil
	}
	return a.playURI(ctx, rec.ProcessedFilepath)
}

func (a *App) playURI(ctx context.Context, uri string) error {
	if err := a.player.Play(ctx, uri); err != nil {
		log.Printf("Playback failed: %s", err.Error())
		return err
	}
	log.Printf("Playing...")
	return nil
}

// Say reads the given text aloud locally, without going through the backend.
func (a *App) Say(ctx context.Context, text string) error {
	if text == "" {
		log.Printf("Usage: say <text>")
		return nil
	}

	if err := a.speaker.Say(ctx, text); err != nil {
		log.Printf("Speech failed: %s", err.Error())
		return err
	}
	return nil
}
