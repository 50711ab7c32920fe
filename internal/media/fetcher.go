package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/22AIML023Hiren/video-summariser/internal/executor"
	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

// Fetcher resolves a source URL to a normalized audio file at destPath.
type Fetcher interface {
	ExtractAudio(ctx context.Context, sourceURL, destPath string) error
}

// YTDLP extracts the best audio stream with yt-dlp and has ffmpeg
// transcode it to 16 kHz mono WAV. The postprocessor can finish after
// yt-dlp returns, so the destination is polled for a bounded time.
type YTDLP struct {
	Binary string

	PollInterval time.Duration
	PollAttempts uint64

	exec executor.Executor
}

func NewYTDLP(binary string, exec executor.Executor) *YTDLP {
	return &YTDLP{
		Binary:       binary,
		PollInterval: time.Second,
		PollAttempts: 10,
		exec:         exec,
	}
}

func (f *YTDLP) ExtractAudio(ctx context.Context, sourceURL, destPath string) error {
	const op = "YTDLP.ExtractAudio"

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return utils.E(utils.CodeFetch, op, "YouTube download failed", err)
	}

	// yt-dlp substitutes the real extension; the wav postprocessor
	// output lands exactly at destPath.
	template := strings.TrimSuffix(destPath, filepath.Ext(destPath)) + ".%(ext)s"

	args := []string{
		"--extract-audio",
		"--audio-format", "wav",
		"--audio-quality", "192K",
		"--postprocessor-args", "ffmpeg:-ar 16000 -ac 1",
		"--no-playlist",
		"--force-overwrites",
		"--quiet",
		"--output", template,
		sourceURL,
	}
	if _, err := f.exec.Run(ctx, f.Binary, args...); err != nil {
		return utils.E(utils.CodeFetch, op, "YouTube download failed", err)
	}

	wait := backoff.WithMaxRetries(backoff.NewConstantBackOff(f.PollInterval), f.PollAttempts)
	err := backoff.Retry(func() error {
		_, statErr := os.Stat(destPath)
		return statErr
	}, backoff.WithContext(wait, ctx))
	if err != nil {
		return utils.E(utils.CodeFetch, op, "YouTube download failed",
			errors.New("Audio file not found after download"))
	}
	return nil
}
