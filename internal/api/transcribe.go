package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abishek0612/video-quiz-generator-api/internal/model"
	"github.com/Abishek0612/video-quiz-generator-api/internal/utils"
)

// Transcribe handles POST /transcribe. Preconditions are checked in order,
// each with its own status: readiness (503), filename present (400), size
// bound (413). Only then is the upload staged and the model invoked.
func (h *Handler) Transcribe(c *gin.Context) {
	if !h.tracker.TranscriptionReady() {
		utils.Detail(c, http.StatusServiceUnavailable, "Models not loaded yet")
		return
	}

	file, err := c.FormFile("audio_file")
	if err != nil {
		utils.Detail(c, http.StatusBadRequest, "audio_file is required")
		return
	}
	if file.Filename == "" {
		utils.Detail(c, http.StatusBadRequest, "Uploaded file must have a filename")
		return
	}
	if file.Size > h.cfg.Server.MaxUploadBytes {
		utils.Detail(c, http.StatusRequestEntityTooLarge, "File exceeds maximum upload size")
		return
	}

	language := c.DefaultQuery("language", "en")

	tmpPath, err := h.stageUpload(file)
	if err != nil {
		h.logger.Error("stage upload", zap.Error(err))
		utils.Detail(c, http.StatusInternalServerError, "Transcription failed: "+err.Error())
		return
	}
	defer os.Remove(tmpPath)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Whisper.TranscribeTimeout)
	defer cancel()

	result, err := h.engine.Transcribe(ctx, tmpPath, language)
	if err != nil {
		// A deadline kills the helper process, so the error itself may be a
		// bare exit failure; the context knows why.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.Detail(c, http.StatusServiceUnavailable, "Transcription timed out")
			return
		}
		h.logger.Error("transcription failed", zap.String("file", file.Filename), zap.Error(err))
		utils.Detail(c, http.StatusInternalServerError, "Transcription failed: "+err.Error())
		return
	}

	detected := result.Language
	if detected == "" {
		detected = language
	}
	segments := make([]model.Segment, 0, len(result.Segments))
	for _, s := range result.Segments {
		segments = append(segments, model.Segment{Start: s.Start, End: s.End, Text: s.Text})
	}

	h.logger.Info("transcription complete",
		zap.String("language", detected),
		zap.Int("segments", len(segments)),
		zap.Float64("duration", result.Duration),
	)
	c.JSON(http.StatusOK, model.TranscriptionResponse{
		Text:     result.Text,
		Segments: segments,
		Language: detected,
		Duration: result.Duration,
	})
}

// stageUpload copies the uploaded bytes into a request-scoped temp file. The
// engine needs a filesystem path; the uuid keeps concurrent requests from
// colliding. The caller removes the file on every exit path.
func (h *Handler) stageUpload(file *multipart.FileHeader) (string, error) {
	dir := h.cfg.Server.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	dst := filepath.Join(dir, "upload-"+uuid.NewString()+filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return dst, nil
}
