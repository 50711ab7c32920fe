package models

// SummarizeRequest is one inbound pipeline request. It is immutable for
// the lifetime of the request and never persisted.
type SummarizeRequest struct {
	URL      string
	Language string // target language code, ex "hi"
	APIKey   string // Bhashini credential, may be the process default
}

// TranscriptArtifact couples the raw transcript with its detected
// language. The detected language is informational only and never gates
// later stages.
type TranscriptArtifact struct {
	Text             string
	DetectedLanguage string
}

// TranslatedSummary is the summary after translation into the requested
// target language.
type TranslatedSummary struct {
	Text     string
	Language string
}

// PipelineResult is the full success payload returned to the caller.
type PipelineResult struct {
	Transcript  string `json:"transcript"`
	Summary     string `json:"summary"`
	AudioBase64 string `json:"audio"`
	Status      string `json:"status"`
}
