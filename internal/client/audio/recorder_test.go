package audio

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for a real
// recorder/player binary.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("exec fakes use /bin/sh")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// fakeRecorder writes some bytes to its output path and idles until
// interrupted, like a real capture process.
func fakeRecorder(t *testing.T) string {
	return writeScript(t, "fakerec", `
trap 'exit 0' INT TERM
printf 'RIFFfake' > "$1"
sleep 60 &
wait $!
`)
}

func TestExecRecorder_StartStopRoundTrip(t *testing.T) {
	rec := NewExecRecorder(fakeRecorder(t), t.TempDir(), 0)
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	time.Sleep(100 * time.Millisecond) // let the fake write its file

	path, err := rec.Stop(ctx)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, ".wav", filepath.Ext(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "RIFFfake", string(b))
}

func TestExecRecorder_StartWhileRecordingIsBusy(t *testing.T) {
	rec := NewExecRecorder(fakeRecorder(t), t.TempDir(), 0)
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	require.ErrorIs(t, rec.Start(ctx), ErrBusy)

	_, _ = rec.Stop(ctx)
}

func TestExecRecorder_StartMissingBinary(t *testing.T) {
	rec := NewExecRecorder(filepath.Join(t.TempDir(), "no-such-recorder"), t.TempDir(), 0)
	require.ErrorIs(t, rec.Start(context.Background()), ErrCapture)

	// a failed start leaves the recorder reusable
	require.ErrorIs(t, rec.Start(context.Background()), ErrCapture)
}

func TestExecRecorder_StopWithoutStart(t *testing.T) {
	rec := NewExecRecorder(fakeRecorder(t), t.TempDir(), 0)
	_, err := rec.Stop(context.Background())
	require.ErrorIs(t, err, ErrNotRecording)
}

func TestExecRecorder_EmptyOutputIsNoAudio(t *testing.T) {
	bin := writeScript(t, "silentrec", `
trap 'exit 0' INT TERM
: > "$1"
sleep 60 &
wait $!
`)
	rec := NewExecRecorder(bin, t.TempDir(), 0)
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	time.Sleep(100 * time.Millisecond)

	path, err := rec.Stop(ctx)
	require.ErrorIs(t, err, ErrNoAudio)
	require.Empty(t, path)
}

func TestExecRecorder_MaxDurationInterruptsCapture(t *testing.T) {
	rec := NewExecRecorder(fakeRecorder(t), t.TempDir(), 200*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	time.Sleep(500 * time.Millisecond) // cap fires, process exits

	// the take is still collectable after the cap
	path, err := rec.Stop(ctx)
	require.NoError(t, err)
	require.FileExists(t, path)
}
