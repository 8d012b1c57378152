package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ExecRecorder captures microphone audio by running an external recorder
// binary that writes a WAV file until interrupted.
type ExecRecorder struct {
	bin         string
	dir         string
	maxDuration time.Duration

	mu    sync.Mutex
	cmd   *exec.Cmd
	path  string
	timer *time.Timer
}

var _ Recorder = (*ExecRecorder)(nil)

// NewExecRecorder records with bin into dir. maxDuration caps a single
// take; 0 disables the cap.
func NewExecRecorder(bin, dir string, maxDuration time.Duration) *ExecRecorder {
	return &ExecRecorder{bin: bin, dir: dir, maxDuration: maxDuration}
}

// captureArgs builds the argument list for the known recorder binaries.
// Unknown binaries are assumed to take the output path as their only
// argument, which keeps test doubles trivial.
func captureArgs(bin, path string) []string {
	switch filepath.Base(bin) {
	case "arecord":
		return []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", path}
	default:
		return []string{path}
	}
}

func (r *ExecRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd != nil {
		return ErrBusy
	}

	path := filepath.Join(r.dir, "recording-"+uuid.NewString()+".wav")

	cmd := exec.Command(r.bin, captureArgs(r.bin, path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %v", ErrCapture, r.bin, err)
	}

	r.cmd = cmd
	r.path = path

	if r.maxDuration > 0 {
		r.timer = time.AfterFunc(r.maxDuration, func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.cmd == cmd {
				_ = cmd.Process.Signal(os.Interrupt)
			}
		})
	}

	return nil
}

func (r *ExecRecorder) Stop(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd == nil {
		return "", ErrNotRecording
	}

	cmd, path := r.cmd, r.path
	r.cmd, r.path = nil, ""
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	_ = cmd.Process.Signal(os.Interrupt)

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
	case <-time.After(5 * time.Second):
		// recorder ignored the interrupt
		_ = cmd.Process.Kill()
		<-done
	}

	fi, err := os.Stat(path)
	if err != nil || fi.Size() == 0 {
		_ = os.Remove(path)
		return "", ErrNoAudio
	}

	return path, nil
}
