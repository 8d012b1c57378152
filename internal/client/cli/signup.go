package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/services"
	"github.com/eartalk/eartalk-cli/internal/shared"
)

func (a *App) Signup(ctx context.Context) error {

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

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

	verify, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(verify)

	birthyear, err := getSimpleText(a.reader, "Enter birth year (e.g. 1990)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	sexAnswer, err := getSimpleText(a.reader, "Sex (m/f)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	// backend contract encodes sex as a boolean: true male, false female
	sex := strings.HasPrefix(strings.ToLower(sexAnswer), "m")

	req := api.SignupRequest{
		Username:       username,
		Password:       string(password),
		VerifyPassword: string(verify),
		Email:          email,
		Birthyear:      birthyear,
		Sex:            sex,
	}

	if err := a.accounts.Signup(ctx, req); err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) {
			log.Printf("Signup failed: passwords do not match")
		} else if apiErr := api.AsAPIError(err); apiErr != nil {
			log.Printf("Signup failed (%d): %s", apiErr.Status, apiErr.Detail)
		} else {
			log.Printf("Signup failed: %s", err.Error())
		}
		return err
	}

	log.Printf("Account created, you can log in now")
	return nil
}
