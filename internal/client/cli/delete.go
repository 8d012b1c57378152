package cli

import (
	"context"
	"log"
	"os"

	"github.com/eartalk/eartalk-cli/internal/client/api"
)

func (a *App) DeleteAccount(ctx context.Context) error {

	answer, err := getSimpleText(a.reader, "This permanently deletes your account and recordings. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if answer != "yes" {
		log.Printf("Aborted")
		return nil
	}

	if err := a.accounts.DeleteAccount(ctx); err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Deletion failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Deletion failed: %s", err.Error())
		}
		return err
	}

	log.Printf("Account deleted")
	return nil
}
