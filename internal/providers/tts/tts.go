package tts

import "context"

// Provider converts text to spoken audio written at outPath.
type Provider interface {
	Synthesize(ctx context.Context, text, language, outPath string) error
}
