package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abishek0612/video-quiz-generator-api/internal/model"
	"github.com/Abishek0612/video-quiz-generator-api/internal/utils"
)

// Health handles GET /health. The transcription engine is the mandatory
// dependency: without it the check fails. The generation backend is
// re-probed on every call and only reported.
func (h *Handler) Health(c *gin.Context) {
	generationUp := h.probeGeneration(c.Request.Context())
	state := h.tracker.Snapshot()

	resp := model.HealthResponse{
		Status:           "healthy",
		ModelsLoaded:     state.Transcription,
		WhisperAvailable: state.Transcription,
		OllamaAvailable:  generationUp,
	}
	if !state.Transcription {
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	if !generationUp {
		resp.Status = "degraded"
	}
	c.JSON(http.StatusOK, resp)
}

// Models handles GET /models, listing what the generation backend can serve.
func (h *Handler) Models(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Ollama.ProbeTimeout)
	defer cancel()

	names, err := h.gen.ListModels(ctx)
	if err != nil {
		h.tracker.SetGenerationReady(false)
		utils.Detail(c, http.StatusServiceUnavailable, "AI model temporarily unavailable")
		return
	}
	h.tracker.SetGenerationReady(true)
	c.JSON(http.StatusOK, model.ModelsResponse{AvailableModels: names})
}
