package langid

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Unknown is returned whenever a language cannot be determined. Language
// detection is best-effort and must never fail the caller.
const Unknown = "unknown"

type Detector interface {
	// Detect returns an ISO 639-1 code for the text, or Unknown.
	Detect(text string) string
}

type whatlangDetector struct{}

func New() Detector { return whatlangDetector{} }

func (whatlangDetector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}

	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		return Unknown
	}
	return code
}
