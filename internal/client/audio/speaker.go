package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecSpeaker reads text aloud via an external synthesizer binary
// (espeak, say, and friends all accept the text as a plain argument).
type ExecSpeaker struct {
	bin string
}

var _ Speaker = (*ExecSpeaker)(nil)

func NewExecSpeaker(bin string) *ExecSpeaker {
	return &ExecSpeaker{bin: bin}
}

// Say blocks until the text has been spoken or ctx is cancelled.
func (s *ExecSpeaker) Say(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty text", ErrSpeech)
	}

	cmd := exec.CommandContext(ctx, s.bin, text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSpeech, s.bin, err)
	}
	return nil
}
