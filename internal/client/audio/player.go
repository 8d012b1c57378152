package audio

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/eartalk/eartalk-cli/internal/netx"
)

// ExecPlayer plays audio by running an external player binary. Remote
// http(s) resources are downloaded to cacheDir first so that fetch failures
// surface as playback errors instead of a silently dying child process.
type ExecPlayer struct {
	bin        string
	cacheDir   string
	httpClient *http.Client

	mu  sync.Mutex
	cmd *exec.Cmd
}

var _ Player = (*ExecPlayer)(nil)

func NewExecPlayer(bin, cacheDir string, httpClient *http.Client) *ExecPlayer {
	return &ExecPlayer{bin: bin, cacheDir: cacheDir, httpClient: httpClient}
}

func playArgs(bin, path string) []string {
	switch filepath.Base(bin) {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	default:
		return []string{path}
	}
}

// Play starts playback of uri, replacing any playback in progress. It
// returns once playback has started; the player process is reaped in the
// background.
func (p *ExecPlayer) Play(ctx context.Context, uri string) error {
	if strings.TrimSpace(uri) == "" {
		return fmt.Errorf("%w: empty resource", ErrPlayback)
	}

	path := uri
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		local, err := netx.FetchToFile(ctx, p.httpClient, uri, p.cacheDir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPlayback, err)
		}
		path = local
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	cmd := exec.Command(p.bin, playArgs(p.bin, path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %v", ErrPlayback, p.bin, err)
	}
	p.cmd = cmd

	go func() { _ = cmd.Wait() }()

	return nil
}

// Stop terminates any playback in progress.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *ExecPlayer) stopLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	p.cmd = nil
}
