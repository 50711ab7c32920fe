package summarize

import (
	"context"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

const summaryPrompt = `Write an abstractive summary of the transcript below.

Requirements:
- The summary must be in English.
- Use between %d and %d words.
- Respond with the summary text only, no preamble or headings.

Transcript:
---
%s
---`

// VertexGemini summarizes through Vertex AI. The client is built once at
// process start and shared read-only across requests.
type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	// non-sampling decoding
	m.SetTemperature(0)

	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, minWords, maxWords, text)

	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return out, nil
}
