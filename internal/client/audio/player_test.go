package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakePlayer records the path it was asked to play and exits.
func fakePlayer(t *testing.T, logPath string) string {
	return writeScript(t, "fakeplay", `echo "$1" >> `+logPath+`
`)
}

func TestExecPlayer_EmptyURI(t *testing.T) {
	p := NewExecPlayer("true", t.TempDir(), nil)
	require.ErrorIs(t, p.Play(context.Background(), ""), ErrPlayback)
	require.ErrorIs(t, p.Play(context.Background(), "   "), ErrPlayback)
}

func TestExecPlayer_PlaysLocalFile(t *testing.T) {
	log := filepath.Join(t.TempDir(), "played.log")
	p := NewExecPlayer(fakePlayer(t, log), t.TempDir(), nil)

	local := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(local, []byte("RIFF"), 0o600))

	require.NoError(t, p.Play(context.Background(), local))

	require.Eventually(t, func() bool {
		b, err := os.ReadFile(log)
		return err == nil && string(b) == local+"\n"
	}, time.Second, 10*time.Millisecond)
}

func TestExecPlayer_DownloadsRemoteResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("RIFFremote"))
	}))
	t.Cleanup(srv.Close)

	log := filepath.Join(t.TempDir(), "played.log")
	cache := t.TempDir()
	p := NewExecPlayer(fakePlayer(t, log), cache, srv.Client())

	require.NoError(t, p.Play(context.Background(), srv.URL+"/out/y.wav"))

	want := filepath.Join(cache, "y.wav")
	require.Eventually(t, func() bool {
		b, err := os.ReadFile(log)
		return err == nil && string(b) == want+"\n"
	}, time.Second, 10*time.Millisecond)

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "RIFFremote", string(b))
}

func TestExecPlayer_FetchFailureIsPlaybackError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	p := NewExecPlayer("true", t.TempDir(), srv.Client())
	require.ErrorIs(t, p.Play(context.Background(), srv.URL+"/x.wav"), ErrPlayback)
}

func TestExecPlayer_MissingBinary(t *testing.T) {
	local := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(local, []byte("RIFF"), 0o600))

	p := NewExecPlayer(filepath.Join(t.TempDir(), "no-such-player"), t.TempDir(), nil)
	require.ErrorIs(t, p.Play(context.Background(), local), ErrPlayback)
}

func TestExecPlayer_NewPlayReplacesPrevious(t *testing.T) {
	// a player that idles forever, so the first playback is still running
	// when the second one starts
	bin := writeScript(t, "idleplay", `sleep 60
`)
	local := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(local, []byte("RIFF"), 0o600))

	p := NewExecPlayer(bin, t.TempDir(), nil)
	require.NoError(t, p.Play(context.Background(), local))

	first := p.cmd
	require.NoError(t, p.Play(context.Background(), local))
	require.NotSame(t, first, p.cmd)

	p.Stop()
	require.Nil(t, p.cmd)
}

func TestExecSpeaker_SaysText(t *testing.T) {
	log := filepath.Join(t.TempDir(), "spoken.log")
	s := NewExecSpeaker(writeScript(t, "fakesay", `echo "$1" >> `+log+`
`))

	require.NoError(t, s.Say(context.Background(), "hello there"))

	b, err := os.ReadFile(log)
	require.NoError(t, err)
	require.Equal(t, "hello there\n", string(b))
}

func TestExecSpeaker_EmptyText(t *testing.T) {
	s := NewExecSpeaker("true")
	require.ErrorIs(t, s.Say(context.Background(), "  "), ErrSpeech)
}

func TestExecSpeaker_MissingBinary(t *testing.T) {
	s := NewExecSpeaker(filepath.Join(t.TempDir(), "no-such-speaker"))
	require.ErrorIs(t, s.Say(context.Background(), "hi"), ErrSpeech)
}
