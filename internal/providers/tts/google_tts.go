package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

const (
	// Summaries shorter than this are rejected before any network call.
	minTextChars = 10

	// The translate_tts endpoint rejects long inputs, so text is split
	// into word-boundary chunks and the MP3 segments concatenated.
	maxChunkChars = 200
)

// GoogleTTS speaks text through the public Google Translate TTS
// endpoint. Accent picks the regional host, ex "co.in".
type GoogleTTS struct {
	Accent     string
	Slow       bool
	HTTPClient *http.Client

	// BaseURL overrides the derived host, for tests.
	BaseURL string
}

func NewGoogleTTS(accent string) *GoogleTTS {
	return &GoogleTTS{
		Accent:     accent,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text, language, outPath string) error {
	const op = "GoogleTTS.Synthesize"

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minTextChars {
		return utils.E(utils.CodeSynthesis, op, "Audio generation failed",
			errors.New("Summary too short for audio"))
	}

	chunks := chunkText(trimmed, maxChunkChars)
	var audio []byte
	for i, chunk := range chunks {
		part, err := g.fetchChunk(ctx, chunk, language, i, len(chunks))
		if err != nil {
			return utils.E(utils.CodeSynthesis, op, "Audio generation failed", err)
		}
		audio = append(audio, part...)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return utils.E(utils.CodeSynthesis, op, "Audio generation failed", err)
	}
	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		return utils.E(utils.CodeSynthesis, op, "Audio generation failed", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		return utils.E(utils.CodeSynthesis, op, "Audio generation failed",
			errors.New("Audio file not saved"))
	}
	return nil
}

func (g *GoogleTTS) fetchChunk(ctx context.Context, text, language string, idx, total int) ([]byte, error) {
	base := g.BaseURL
	if base == "" {
		accent := g.Accent
		if accent == "" {
			accent = "com"
		}
		base = "https://translate.google." + accent
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", language)
	q.Set("q", text)
	q.Set("total", fmt.Sprint(total))
	q.Set("idx", fmt.Sprint(idx))
	q.Set("textlen", fmt.Sprint(len([]rune(text))))
	if g.Slow {
		q.Set("ttsspeed", "0.24")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// chunkText splits text into runs of at most limit runes, breaking on
// spaces where possible.
func chunkText(text string, limit int) []string {
	words := strings.Fields(text)
	var chunks []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}

	for _, w := range words {
		wlen := len([]rune(w))
		// a single oversized word is split hard
		for wlen > limit {
			flush()
			r := []rune(w)
			chunks = append(chunks, string(r[:limit]))
			w = string(r[limit:])
			wlen = len([]rune(w))
		}
		curLen := len([]rune(cur.String()))
		if curLen > 0 && curLen+1+wlen > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	flush()
	return chunks
}
