package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/shared"
)

func (a *App) Login(ctx context.Context) error {

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.accounts.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, api.ErrNetwork) {
			log.Printf("Server unreachable, try again later")
		} else if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Login failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Login failed: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		return err
	}
	log.Printf("Logged out")
	return nil
}
