// Package api wires the HTTP surface: routes, preconditions, backend calls
// and the mapping of failures onto status codes.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abishek0612/video-quiz-generator-api/internal/ai"
	"github.com/Abishek0612/video-quiz-generator-api/internal/config"
	"github.com/Abishek0612/video-quiz-generator-api/internal/ready"
	"github.com/Abishek0612/video-quiz-generator-api/internal/stt"
)

// Handler carries the injected backends and shared readiness state. Handlers
// hold no per-request state of their own.
type Handler struct {
	engine  stt.Engine
	gen     ai.Generator
	tracker *ready.Tracker
	cfg     *config.Config
	logger  *zap.Logger
}

func NewHandler(engine stt.Engine, gen ai.Generator, tracker *ready.Tracker, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		engine:  engine,
		gen:     gen,
		tracker: tracker,
		cfg:     cfg,
		logger:  logger,
	}
}

// RegisterRoutes attaches all endpoints to the gin engine.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/models", h.Models)
	r.POST("/transcribe", h.Transcribe)
	r.POST("/generate-questions", h.GenerateQuestions)
}

// probeGeneration checks whether the generation backend answers and records
// the outcome. The backend is external and may come up after we do, so the
// flag is rewritten on every probe.
func (h *Handler) probeGeneration(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.Ollama.ProbeTimeout)
	defer cancel()

	_, err := h.gen.ListModels(ctx)
	ok := err == nil
	if !ok {
		h.logger.Warn("generation backend unreachable", zap.Error(err))
	}
	h.tracker.SetGenerationReady(ok)
	return ok
}
