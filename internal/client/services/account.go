package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/session"
)

// ErrPasswordMismatch rejects signup and password change before any request
// is issued when the password and its confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// AccountService wraps account operations against the backend and owns the
// session token lifecycle: Login writes it, Logout and DeleteAccount clear
// it, everything else only reads it.
type AccountService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	TokenExpired(ctx context.Context) bool
	Signup(ctx context.Context, req api.SignupRequest) error
	ResetPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, current, newPassword, verify string) error
	DeleteAccount(ctx context.Context) error
	UserInfo(ctx context.Context) (*api.UserRecord, error)
	Recordings(ctx context.Context) (*api.RecordingList, error)
	Recording(ctx context.Context, identifier string) (*api.Recording, error)
}

type accountService struct {
	client api.Client
	store  session.Store
}

func NewAccountService(client api.Client, store session.Store) AccountService {
	return &accountService{client: client, store: store}
}

// Login exchanges credentials for a token and persists it. The store write
// completes before Login returns, so a following authenticated call cannot
// race against an absent token.
func (a *accountService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (a *accountService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *accountService) IsLoggedIn(ctx context.Context) bool {
	return a.store.Get(ctx) != ""
}

// TokenExpired reports whether the stored token carries an expiry in the
// past. Used to warn the user; the backend still has the final word.
func (a *accountService) TokenExpired(ctx context.Context) bool {
	token := a.store.Get(ctx)
	return token != "" && session.IsExpired(token)
}

func (a *accountService) Signup(ctx context.Context, req api.SignupRequest) error {
	if req.Password != req.VerifyPassword {
		return ErrPasswordMismatch
	}
	return a.client.Signup(ctx, req)
}

func (a *accountService) ResetPassword(ctx context.Context, email string) error {
	return a.client.ResetPassword(ctx, email)
}

func (a *accountService) ChangePassword(ctx context.Context, current, newPassword, verify string) error {
	if newPassword != verify {
		return ErrPasswordMismatch
	}
	return a.client.ChangePassword(ctx, api.ChangePasswordRequest{
		CurrentPassword:   current,
		NewPassword:       newPassword,
		VerifyNewPassword: verify,
	})
}

// DeleteAccount removes the account server-side, then destroys the local
// session.
func (a *accountService) DeleteAccount(ctx context.Context) error {
	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}
	return a.store.Clear(ctx)
}

func (a *accountService) UserInfo(ctx context.Context) (*api.UserRecord, error) {
	return a.client.GetUser(ctx)
}

func (a *accountService) Recordings(ctx context.Context) (*api.RecordingList, error) {
	return a.client.ListRecordings(ctx)
}

func (a *accountService) Recording(ctx context.Context, identifier string) (*api.Recording, error) {
	return a.client.GetRecording(ctx, identifier)
}
