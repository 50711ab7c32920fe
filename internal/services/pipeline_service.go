package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/22AIML023Hiren/video-summariser/internal/media"
	"github.com/22AIML023Hiren/video-summariser/internal/models"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/langid"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/stt"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/translate"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/tts"
	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

// PipelineService runs the full chain for one request:
// fetch -> transcribe -> detect -> summarize -> translate -> synthesize.
// Stages run strictly in order; the first failure aborts the chain and
// is returned as the single error for the request.
type PipelineService interface {
	Run(ctx context.Context, req models.SummarizeRequest) (*models.PipelineResult, error)
}

type PipelineDeps struct {
	Fetcher    media.Fetcher
	STT        stt.Provider
	Detector   langid.Detector
	Summaries  SummaryService
	Translator *translate.Translator
	TTS        tts.Provider
	Logger     *logrus.Logger

	WorkDir       string
	KeepArtifacts bool
}

type pipelineService struct {
	d PipelineDeps
}

func NewPipelineService(d PipelineDeps) PipelineService {
	return &pipelineService{d: d}
}

func (p *pipelineService) Run(ctx context.Context, req models.SummarizeRequest) (*models.PipelineResult, error) {
	const op = "PipelineService.Run"

	ws, err := NewWorkspace(p.d.WorkDir)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create workspace", err)
	}
	log := p.d.Logger.WithFields(logrus.Fields{
		"workspace": ws.ID,
		"url":       req.URL,
	})
	if !p.d.KeepArtifacts {
		defer func() {
			if err := ws.Cleanup(); err != nil {
				log.WithError(err).Warn("workspace cleanup failed")
			}
		}()
	}

	log.Info("downloading audio")
	if err := p.d.Fetcher.ExtractAudio(ctx, req.URL, ws.AudioPath()); err != nil {
		return nil, err
	}

	log.Info("transcribing audio")
	transcript, err := p.transcribe(ctx, ws)
	if err != nil {
		return nil, err
	}
	// detection is informational only, it never gates later stages
	log.WithField("language", transcript.DetectedLanguage).Info("transcript language detected")

	log.Info("summarizing transcript")
	englishSummary, err := p.d.Summaries.Summarize(ctx, transcript.Text, req.APIKey)
	if err != nil {
		return nil, err
	}

	log.WithField("target", req.Language).Info("translating summary")
	translated, err := p.d.Translator.Translate(ctx, req.Language, englishSummary, req.APIKey, "auto")
	if err != nil {
		return nil, err
	}
	summary := models.TranslatedSummary{Text: translated, Language: req.Language}

	log.Info("generating audio summary")
	if err := p.d.TTS.Synthesize(ctx, summary.Text, summary.Language, ws.SummaryAudioPath()); err != nil {
		return nil, err
	}

	audio, err := os.ReadFile(ws.SummaryAudioPath())
	if err != nil {
		return nil, utils.E(utils.CodeSynthesis, op, "Audio generation failed", err)
	}

	log.Info("pipeline completed")
	return &models.PipelineResult{
		Transcript:  transcript.Text,
		Summary:     summary.Text,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		Status:      "success",
	}, nil
}

func (p *pipelineService) transcribe(ctx context.Context, ws *Workspace) (models.TranscriptArtifact, error) {
	const op = "PipelineService.transcribe"

	if _, err := os.Stat(ws.AudioPath()); err != nil {
		return models.TranscriptArtifact{}, utils.E(utils.CodeTranscription, op, "Transcription failed",
			errors.New("Audio file not found"))
	}

	text, err := p.d.STT.Transcribe(ctx, ws.AudioPath())
	if err != nil {
		return models.TranscriptArtifact{}, utils.E(utils.CodeTranscription, op, "Transcription failed", err)
	}

	// best-effort side artifact; failure to persist never fails the run
	if err := os.WriteFile(ws.TranscriptPath(), []byte(text), 0o644); err != nil {
		p.d.Logger.WithError(err).Warn("failed to persist transcript artifact")
	}

	return models.TranscriptArtifact{
		Text:             text,
		DetectedLanguage: p.d.Detector.Detect(text),
	}, nil
}
