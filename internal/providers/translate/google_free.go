package translate

import (
	"context"
	"fmt"

	"github.com/bregydoc/gtranslate"
)

// GoogleFree is the fallback engine. It uses the public Google Translate
// endpoint and needs no credential. The source language is always left
// to auto-detection.
type GoogleFree struct{}

func (GoogleFree) Name() string { return "google-translate" }

func (GoogleFree) Translate(ctx context.Context, req Request) (string, error) {
	out, err := gtranslate.TranslateWithParams(req.Text, gtranslate.TranslationParams{
		From: "auto",
		To:   req.Target,
	})
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	return out, nil
}
