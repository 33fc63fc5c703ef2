package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/summary-share/errors"
	dto "github.com/johnquangdev/summary-share/internal/adapter/dto/summarize"
	"github.com/johnquangdev/summary-share/internal/usecase/summary"
)

// SummarizeHandler handles transcript summarization requests
type SummarizeHandler struct {
	svc    summary.Service
	logger *zap.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(svc summary.Service, logger *zap.Logger) *SummarizeHandler {
	return &SummarizeHandler{svc: svc, logger: logger}
}

// Summarize generates a summary for a submitted transcript
// @Summary      Summarize a meeting transcript
// @Description  Accepts a transcript (uploaded file, form field, or JSON body) and returns an AI-generated summary
// @Tags         Summarize
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        request  body      object{transcript=string,customPrompt=string}  false  "Transcript and optional custom instructions"
// @Success      200      {object}  summarize.Response
// @Failure      400      {object}  common.ErrorResponse  "No transcript provided or transcript is empty"
// @Failure      500      {object}  common.ErrorResponse  "Failed to generate summary"
// @Router       /summarize [post]
func (h *SummarizeHandler) Summarize(c echo.Context) error {
	transcript, customPrompt, err := extractTranscript(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if transcript == "" {
		return HandleError(h.logger, c, errors.ErrNoTranscript())
	}
	if strings.TrimSpace(transcript) == "" {
		return HandleError(h.logger, c, errors.ErrEmptyTranscript())
	}

	text, err := h.svc.Summarize(c.Request().Context(), transcript, customPrompt)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrSummaryFailed(err))
	}

	return c.JSON(http.StatusOK, dto.Response{
		Success:      true,
		Summary:      text,
		OriginalText: transcript,
	})
}

// extractTranscript reads the transcript from an uploaded file part when one
// is present, otherwise from the bound request body. The file is read in
// full; there is no streaming.
func extractTranscript(c echo.Context) (transcript, customPrompt string, err error) {
	if file, ferr := c.FormFile("file"); ferr == nil && file != nil {
		src, oerr := file.Open()
		if oerr != nil {
			return "", "", errors.ErrInternal(oerr)
		}
		defer src.Close()

		content, rerr := io.ReadAll(src)
		if rerr != nil {
			return "", "", errors.ErrInternal(rerr)
		}
		return string(content), c.FormValue("customPrompt"), nil
	}

	var req dto.Request
	if berr := c.Bind(&req); berr != nil {
		return "", "", errors.ErrInvalidPayload()
	}
	return req.Transcript, req.CustomPrompt, nil
}
