package stt

import "context"

// Provider is a speech-to-text engine over a local audio file.
type Provider interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Close() error
}
