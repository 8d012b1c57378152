package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/audio"
	"github.com/eartalk/eartalk-cli/internal/client/config"
	"github.com/eartalk/eartalk-cli/internal/client/services"
	"github.com/eartalk/eartalk-cli/internal/client/session"
	"github.com/eartalk/eartalk-cli/internal/filex"
	"github.com/eartalk/eartalk-cli/internal/logging"

	_ "modernc.org/sqlite"
)

const sessionDBName = "eartalk.db"

type App struct {
	config     *config.Config
	accounts   services.AccountService
	recordings services.RecordingService
	player     audio.Player
	speaker    audio.Speaker
	reader     *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := session.Open(ctx, filepath.Join(dataDir, sessionDBName))
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.HTTPTimeout, c.ClientID, c.ClientSecret, store)

	recorder := audio.NewExecRecorder(c.RecordCommand, dataDir, c.MaxRecordDuration)
	player := audio.NewExecPlayer(c.PlayCommand, dataDir, &http.Client{Timeout: c.HTTPTimeout})
	speaker := audio.NewExecSpeaker(c.SpeakCommand)

	logger := newAppLogger()

	return &App{
		config:     c,
		accounts:   services.NewAccountService(apiClient, store),
		recordings: services.NewRecordingService(apiClient, store, recorder, logger),
		player:     player,
		speaker:    speaker,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// newAppLogger keeps the terminal quiet: only warnings and errors from the
// services layer reach stderr.
func newAppLogger() logging.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return logging.NewSlogLogger(slog.New(h))
}

func (a *App) Run(ctx context.Context) {
	defer a.player.Stop()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsLoggedIn(context.Background())
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	ctx := context.Background()
	if !a.accounts.IsLoggedIn(ctx) {
		return "logged out"
	}
	if a.accounts.TokenExpired(ctx) {
		return "session expired"
	}
	return "logged in"
}
