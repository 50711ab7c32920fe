package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/22AIML023Hiren/video-summariser/internal/api/handlers"
	"github.com/22AIML023Hiren/video-summariser/internal/api/middleware"
	"github.com/22AIML023Hiren/video-summariser/internal/api/routes"
	"github.com/22AIML023Hiren/video-summariser/internal/config"
	"github.com/22AIML023Hiren/video-summariser/internal/executor"
	"github.com/22AIML023Hiren/video-summariser/internal/logger"
	"github.com/22AIML023Hiren/video-summariser/internal/media"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/langid"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/stt"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/summarize"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/translate"
	"github.com/22AIML023Hiren/video-summariser/internal/providers/tts"
	"github.com/22AIML023Hiren/video-summariser/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load error")
	}

	ctx := context.Background()
	run := executor.New()

	// Heavyweight model clients are built once here and shared
	// read-only across all requests.
	log.Info("loading models")

	var speech stt.Provider
	switch cfg.STTProvider {
	case "google":
		speech, err = stt.NewGoogleSpeech(ctx)
		if err != nil {
			log.WithError(err).Fatal("speech client init error")
		}
	default:
		speech = stt.NewWhisperCPP(cfg.WhisperBin, cfg.WhisperModel, cfg.WhisperThreads, run)
	}
	defer speech.Close()

	model, err := summarize.NewVertexGemini(ctx, cfg.GCPProject, cfg.GCPLocation, cfg.SummaryModel)
	if err != nil {
		log.WithError(err).Fatal("summarization model init error")
	}
	defer model.Close()

	log.Info("models loaded")

	detector := langid.New()
	translator := translate.NewTranslator(
		translate.NewBhashini(cfg.BhashiniURL, cfg.BhashiniServiceID),
		translate.GoogleFree{},
		log,
	)

	summaries := services.NewSummaryService(model, detector, translator, log)
	pipeline := services.NewPipelineService(services.PipelineDeps{
		Fetcher:       media.NewYTDLP(cfg.YTDLPBin, run),
		STT:           speech,
		Detector:      detector,
		Summaries:     summaries,
		Translator:    translator,
		TTS:           tts.NewGoogleTTS(cfg.TTSAccent),
		Logger:        log,
		WorkDir:       cfg.WorkDir,
		KeepArtifacts: cfg.KeepArtifacts,
	})

	if cfg.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Summarize: handlers.NewSummarizeHandler(pipeline, cfg.BhashiniAPIKey, cfg.DefaultLanguage),
	})

	log.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}
