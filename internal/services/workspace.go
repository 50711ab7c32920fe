package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is the request-scoped directory holding every intermediate
// artifact of one pipeline run. Scoping artifacts by request id is what
// makes concurrent runs safe: no two runs ever share a path.
type Workspace struct {
	ID  string
	Dir string
}

func NewWorkspace(root string) (*Workspace, error) {
	id := uuid.NewString()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace dir: %w", err)
	}
	return &Workspace{ID: id, Dir: dir}, nil
}

// AudioPath is the fetched, normalized source audio.
func (w *Workspace) AudioPath() string { return filepath.Join(w.Dir, "audio.wav") }

// TranscriptPath is the transcript side artifact kept for inspection.
func (w *Workspace) TranscriptPath() string { return filepath.Join(w.Dir, "transcript.txt") }

// SummaryAudioPath is the synthesized spoken summary.
func (w *Workspace) SummaryAudioPath() string { return filepath.Join(w.Dir, "summary.mp3") }

func (w *Workspace) Cleanup() error { return os.RemoveAll(w.Dir) }
