package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abishek0612/video-quiz-generator-api/internal/ai"
	"github.com/Abishek0612/video-quiz-generator-api/internal/model"
	"github.com/Abishek0612/video-quiz-generator-api/internal/utils"
)

// minTextLength is the smallest trimmed transcript span worth generating
// questions from.
const minTextLength = 50

// GenerateQuestions handles POST /generate-questions.
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req model.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Detail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	if req.QuestionCount == 0 {
		req.QuestionCount = 3
	}

	if len(strings.TrimSpace(req.Text)) < minTextLength {
		utils.Detail(c, http.StatusBadRequest, "Text too short for question generation")
		return
	}

	// The backend may have come up since startup; re-probe before giving up.
	if !h.tracker.Snapshot().Generation && !h.probeGeneration(c.Request.Context()) {
		utils.Detail(c, http.StatusServiceUnavailable, "AI model temporarily unavailable")
		return
	}

	system, user := ai.BuildQuestionPrompt(req.Text, req.Difficulty, req.QuestionCount)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Ollama.ChatTimeout)
	defer cancel()

	content, err := h.gen.Chat(ctx, system, user)
	if err != nil {
		h.logger.Error("generation backend call failed", zap.Error(err))
		utils.Detail(c, http.StatusServiceUnavailable, "AI model temporarily unavailable")
		return
	}

	// Parsing cuts any over-produced questions down to the requested count;
	// fewer is accepted silently.
	questions, err := ai.ParseQuestions(content, req.Difficulty, req.QuestionCount)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			h.logger.Error("malformed generation output", zap.Error(err), zap.Int("content_length", len(content)))
			utils.Detail(c, http.StatusInternalServerError, "Invalid response format from AI model")
			return
		}
		utils.Detail(c, http.StatusInternalServerError, "Question generation failed: "+err.Error())
		return
	}

	h.logger.Info("questions generated",
		zap.Int("count", len(questions)),
		zap.Int("requested", req.QuestionCount),
		zap.String("difficulty", req.Difficulty),
	)
	c.JSON(http.StatusOK, model.QuestionsResponse{
		Questions: questions,
		SegmentInfo: model.SegmentInfo{
			SegmentIndex: req.SegmentIndex,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Duration:     req.EndTime - req.StartTime,
			Language:     req.Language,
		},
	})
}
