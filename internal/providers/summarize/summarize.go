package summarize

import "context"

// Provider is an abstractive summarization model. Decoding is expected
// to be deterministic so repeated calls agree.
type Provider interface {
	Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error)
	Close() error
}
