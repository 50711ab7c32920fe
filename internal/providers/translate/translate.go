package translate

import "context"

// Request carries one translation call across backends.
type Request struct {
	Text       string
	Source     string // ISO 639-1 code, or "auto"
	Target     string
	Credential string // ignored by backends that need none
}

// Backend is one translation engine. Backends report plain errors; the
// Translator composing them decides what is fatal.
type Backend interface {
	Name() string
	Translate(ctx context.Context, req Request) (string, error)
}
