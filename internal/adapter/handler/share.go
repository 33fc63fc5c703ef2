package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/summary-share/errors"
	dto "github.com/johnquangdev/summary-share/internal/adapter/dto/share"
	"github.com/johnquangdev/summary-share/internal/usecase/share"
)

// ShareHandler handles summary sharing requests
type ShareHandler struct {
	svc    share.Service
	logger *zap.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(svc share.Service, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{svc: svc, logger: logger}
}

// Share emails a summary to a list of recipients
// @Summary      Share a summary by email
// @Description  Delivers the (possibly edited) summary to each recipient. Partial failure is reported as a single aggregate failure.
// @Tags         Share
// @Accept       json
// @Produce      json
// @Param        request  body      share.Request  true  "Summary, recipients, subject and sender"
// @Success      200      {object}  share.Response
// @Failure      400      {object}  common.ErrorResponse  "Invalid request data"
// @Failure      500      {object}  common.ErrorResponse  "Failed to send email"
// @Router       /share [post]
func (h *ShareHandler) Share(c echo.Context) error {
	var req dto.Request
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidShareRequest())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidShareRequest())
	}

	in := share.Input{
		Summary:    req.Summary,
		Recipients: req.Recipients,
		Subject:    req.Subject,
		Sender:     req.Sender,
	}
	if err := h.svc.Share(c.Request().Context(), in); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Summary shared successfully",
	})
}
