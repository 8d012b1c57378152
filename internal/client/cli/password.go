package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/services"
	"github.com/eartalk/eartalk-cli/internal/shared"
)

func (a *App) ChangePassword(ctx context.Context) error {

	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(current)

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(newPassword)

	verify, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(verify)

	if err := a.accounts.ChangePassword(ctx, string(current), string(newPassword), string(verify)); err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) {
			log.Printf("Password change failed: passwords do not match")
		} else if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Password change failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Password change failed: %s", err.Error())
		}
		return err
	}

	log.Printf("Password changed")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {

	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.accounts.ResetPassword(ctx, email); err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Reset failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Reset failed: %s", err.Error())
		}
		return err
	}

	log.Printf("Reset instructions sent to %s", email)
	return nil
}
