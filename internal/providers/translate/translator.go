package translate

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

// Input longer than this is cut before transmission.
const maxInputChars = 5000

// Translator tries the primary backend and, on any primary failure,
// retries once via the fallback backend. The credential gates the
// primary attempt: without one the call fails immediately and the
// fallback is never reached. An invalid credential fails the primary
// attempt and does reach the fallback.
type Translator struct {
	primary  Backend
	fallback Backend
	log      *logrus.Logger
}

func NewTranslator(primary, fallback Backend, log *logrus.Logger) *Translator {
	return &Translator{primary: primary, fallback: fallback, log: log}
}

func (t *Translator) Translate(ctx context.Context, target, text, credential, source string) (string, error) {
	const op = "Translator.Translate"

	if credential == "" {
		return "", utils.E(utils.CodeTranslation, op, "Translation failed", errors.New("Bhashini API key missing"))
	}
	if source == "" {
		source = "auto"
	}
	if runes := []rune(text); len(runes) > maxInputChars {
		text = string(runes[:maxInputChars])
	}

	out, primaryErr := t.primary.Translate(ctx, Request{
		Text:       text,
		Source:     source,
		Target:     target,
		Credential: credential,
	})
	if primaryErr == nil {
		return out, nil
	}

	t.log.WithFields(logrus.Fields{
		"backend": t.primary.Name(),
		"error":   primaryErr.Error(),
	}).Warn("primary translation failed, switching to fallback")

	// No source hint: the fallback engine auto-detects.
	out, fallbackErr := t.fallback.Translate(ctx, Request{Text: text, Target: target})
	if fallbackErr == nil {
		return out, nil
	}

	return "", utils.E(utils.CodeTranslation, op, "Fallback translation also failed",
		errors.Join(primaryErr, fallbackErr))
}
