package cli

import (
	"context"
	"log"

	"github.com/eartalk/eartalk-cli/internal/client/api"
)

func (a *App) List(ctx context.Context) error {
	list, err := a.accounts.Recordings(ctx)
	if err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Listing failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Listing failed: %s", err.Error())
		}
		return err
	}

	if list.Count == 0 {
		printlnFn("No recordings yet")
		return nil
	}

	for _, rec := range list.Data {
		printlnFn(formatRecording(rec))
	}
	return nil
}

func formatRecording(rec api.Recording) string {
	text := rec.Text
	if text == "" {
		text = "(no transcript)"
	}
	return rec.CreatedAt + "  #" + rec.Identifier + "  " + text
}

func (a *App) UserInfo(ctx context.Context) error {
	user, err := a.accounts.UserInfo(ctx)
	if err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Lookup failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Lookup failed: %s", err.Error())
		}
		return err
	}

	sex := "female"
	if user.Sex {
		sex = "male"
	}

	printlnFn("Email:", user.Email)
	printlnFn("Birth year:", user.Birthyear)
	printlnFn("Sex:", sex)
	return nil
}
