package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/22AIML023Hiren/video-summariser/internal/providers/langid"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/summarize"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/translate"
	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

const (
	// Transcripts shorter than this (trimmed) cannot be summarized.
	minTranscriptChars = 50

	// The model only ever sees this much transcript.
	maxModelInputChars = 4000

	summaryMinWords = 50
	summaryMaxWords = 250
)

// SummaryService produces a bounded English summary of a transcript.
// Non-English transcripts are first translated to English, which needs
// a credential for the primary translation service.
type SummaryService interface {
	Summarize(ctx context.Context, transcript, credential string) (string, error)
}

type summaryService struct {
	model      summarize.Provider
	detector   langid.Detector
	translator *translate.Translator
	log        *logrus.Logger
}

func NewSummaryService(model summarize.Provider, detector langid.Detector, translator *translate.Translator, log *logrus.Logger) SummaryService {
	return &summaryService{model: model, detector: detector, translator: translator, log: log}
}

func (s *summaryService) Summarize(ctx context.Context, transcript, credential string) (string, error) {
	const op = "SummaryService.Summarize"

	text := strings.TrimSpace(transcript)
	if utf8.RuneCountInString(text) < minTranscriptChars {
		return "", utils.E(utils.CodeSummarization, op, "Summarization failed",
			errors.New("Transcript too short for summarization"))
	}

	if runes := []rune(text); len(runes) > maxModelInputChars {
		text = string(runes[:maxModelInputChars])
	}

	lang := s.detector.Detect(text)
	s.log.WithField("language", lang).Info("detected transcript language")

	if lang != "en" {
		if credential == "" {
			return "", utils.E(utils.CodeSummarization, op, "Summarization failed",
				errors.New("API key required for translation to English"))
		}
		s.log.Info("translating transcript to English for summarization")
		translated, err := s.translator.Translate(ctx, "en", text, credential, lang)
		if err != nil {
			return "", utils.E(utils.CodeSummarization, op, "Summarization failed", err)
		}
		text = translated
	}

	maxWords := utf8.RuneCountInString(text) / 3
	if maxWords > summaryMaxWords {
		maxWords = summaryMaxWords
	}

	out, err := s.model.Summarize(ctx, text, maxWords, summaryMinWords)
	if err != nil {
		return "", utils.E(utils.CodeSummarization, op, "Summarization failed", err)
	}
	return out, nil
}
