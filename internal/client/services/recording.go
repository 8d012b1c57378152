// Package services contains the application services behind the CLI: the
// recording workflow (capture, upload, result) and account management.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/eartalk/eartalk-cli/internal/client/api"
	"github.com/eartalk/eartalk-cli/internal/client/audio"
	"github.com/eartalk/eartalk-cli/internal/client/session"
	"github.com/eartalk/eartalk-cli/internal/logging"
)

// RecordingState is the lifecycle of one take.
type RecordingState string

const (
	StateIdle      RecordingState = "idle"
	StateRecording RecordingState = "recording"
	StateStopping  RecordingState = "stopping"
	StateUploading RecordingState = "uploading"
	StateDone      RecordingState = "done"
	StateFailed    RecordingState = "failed"
)

var (
	// ErrRecordingInProgress rejects Start while a take is being captured
	// or uploaded. The state is left unchanged.
	ErrRecordingInProgress = errors.New("recording already in progress")

	// ErrNotRecording rejects Stop outside the Recording state.
	ErrNotRecording = errors.New("no recording in progress")

	// ErrNothingToUpload rejects Upload when no captured file is pending.
	ErrNothingToUpload = errors.New("nothing to upload")
)

// RecordingSession is a snapshot of the workflow state. Err is set only in
// StateFailed; ResultText and ResultAudioURL only in StateDone.
type RecordingSession struct {
	State          RecordingState
	LocalPath      string
	ResultText     string
	ResultAudioURL string
	Err            error
}

// RecordingService drives the record → stop → upload workflow.
//
// Contract:
//   - Start: valid from Idle, Failed, or Done; clears prior result/error.
//   - Stop: valid only from Recording; on success uploads immediately.
//   - Upload: re-entrant retry from Failed when a captured file is pending.
//   - Session: snapshot of the current state.
//
// Only one Start/Stop/Upload sequence runs at a time per instance; calls
// arriving while one is in flight are rejected, independent of UI state.
type RecordingService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Upload(ctx context.Context) error
	Session() RecordingSession
}

type recordingService struct {
	client api.Client
	store  session.Store
	rec    audio.Recorder
	log    logging.Logger

	// mu serializes the whole workflow: it is held across capture stop and
	// upload, so a second sequence cannot start mid-flight.
	mu   sync.Mutex
	sess RecordingSession
}

// NewRecordingService binds the workflow to an API client, session store,
// and recorder.
func NewRecordingService(client api.Client, store session.Store, rec audio.Recorder, log logging.Logger) RecordingService {
	return &recordingService{
		client: client,
		store:  store,
		rec:    rec,
		log:    log,
		sess:   RecordingSession{State: StateIdle},
	}
}

func (s *recordingService) Session() RecordingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

func (s *recordingService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.sess.State {
	case StateRecording, StateStopping, StateUploading:
		return ErrRecordingInProgress
	}

	// a fresh take clears any prior result or error
	s.sess = RecordingSession{State: StateRecording}

	if err := s.rec.Start(ctx); err != nil {
		s.sess = RecordingSession{State: StateIdle}
		s.log.Warn(ctx, "capture failed to start", "error", err)
		return fmt.Errorf("start recording: %w", err)
	}

	s.log.Info(ctx, "recording started")
	return nil
}

func (s *recordingService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.State != StateRecording {
		return ErrNotRecording
	}

	s.sess.State = StateStopping

	path, err := s.rec.Stop(ctx)
	if err != nil {
		s.sess = RecordingSession{State: StateFailed, Err: err}
		s.log.Warn(ctx, "capture produced no audio", "error", err)
		return err
	}

	s.sess.State = StateUploading
	s.sess.LocalPath = path
	s.log.Info(ctx, "recording stopped", "path", path)

	return s.uploadLocked(ctx)
}

// Upload retries the upload of an already captured take from Failed.
func (s *recordingService) Upload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.State != StateFailed || s.sess.LocalPath == "" {
		return ErrNothingToUpload
	}

	s.sess = RecordingSession{State: StateUploading, LocalPath: s.sess.LocalPath}
	return s.uploadLocked(ctx)
}

// uploadLocked runs with mu held and s.sess in StateUploading.
func (s *recordingService) uploadLocked(ctx context.Context) error {
	path := s.sess.LocalPath

	// absent token short-circuits before any network call
	if s.store.Get(ctx) == "" {
		s.sess = RecordingSession{State: StateFailed, LocalPath: path, Err: api.ErrNotAuthenticated}
		return api.ErrNotAuthenticated
	}

	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: open %s: %v", audio.ErrNoAudio, path, err)
		s.sess = RecordingSession{State: StateFailed, Err: err}
		return err
	}
	defer f.Close()

	result, err := s.client.UploadAudio(ctx, f)
	if err != nil {
		s.sess = RecordingSession{State: StateFailed, LocalPath: path, Err: err}
		s.log.Warn(ctx, "upload failed", "path", path, "error", err)
		return err
	}

	s.sess = RecordingSession{
		State:          StateDone,
		LocalPath:      path,
		ResultText:     result.Text,
		ResultAudioURL: result.AudioURL,
	}
	s.log.Info(ctx, "upload complete", "path", path)
	return nil
}
