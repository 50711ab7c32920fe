package stt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/22AIML023Hiren/video-summariser/internal/executor"
)

// WhisperCPP transcribes with a local whisper.cpp binary. The model is
// loaded by the binary per invocation; the binary and model paths are
// fixed at construction.
type WhisperCPP struct {
	Binary  string
	Model   string
	Threads int

	exec executor.Executor
}

func NewWhisperCPP(binary, model string, threads int, exec executor.Executor) *WhisperCPP {
	if threads <= 0 {
		threads = 4
	}
	return &WhisperCPP{Binary: binary, Model: model, Threads: threads, exec: exec}
}

func (w *WhisperCPP) Close() error { return nil }

func (w *WhisperCPP) Transcribe(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	args := []string{
		"-m", w.Model,
		"-f", audioPath,
		"-otxt",
		"-t", strconv.Itoa(w.Threads),
		"-np",
		"--output-file", outputPrefix,
	}
	if _, err := w.exec.Run(ctx, w.Binary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
