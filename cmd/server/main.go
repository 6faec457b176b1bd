// Package main runs the transcription and question-generation HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abishek0612/video-quiz-generator-api/internal/ai"
	"github.com/Abishek0612/video-quiz-generator-api/internal/api"
	"github.com/Abishek0612/video-quiz-generator-api/internal/config"
	"github.com/Abishek0612/video-quiz-generator-api/internal/middleware"
	"github.com/Abishek0612/video-quiz-generator-api/internal/ready"
	"github.com/Abishek0612/video-quiz-generator-api/internal/stt"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	tracker := ready.NewTracker()

	// The transcription model is the mandatory in-process dependency: if it
	// cannot be loaded the service must not start serving.
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Whisper.TranscribeTimeout)
	engine, err := stt.LoadWhisper(loadCtx, cfg.Whisper.Model, cfg.Whisper.Python, cfg.Whisper.Device, logger)
	cancel()
	if err != nil {
		logger.Fatal("load transcription model", zap.Error(err))
	}
	tracker.SetTranscriptionReady()

	// The generation backend is an external service that may come up later;
	// a failed probe only degrades the service.
	gen := ai.NewOllamaClient(cfg.Ollama, cfg.Generation, logger)
	probeCtx, cancel := context.WithTimeout(context.Background(), cfg.Ollama.ProbeTimeout)
	if _, err := gen.ListModels(probeCtx); err != nil {
		logger.Warn("generation backend not reachable, starting degraded", zap.Error(err))
	} else {
		tracker.SetGenerationReady(true)
		logger.Info("generation backend reachable", zap.String("url", cfg.Ollama.URL), zap.String("model", cfg.Ollama.Model))
	}
	cancel()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	r.MaxMultipartMemory = 32 << 20

	handler := api.NewHandler(engine, gen, tracker, cfg, logger)
	api.RegisterRoutes(r, handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}
