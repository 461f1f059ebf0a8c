package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-ai-orchestrator/internal/middleware"
	"hardware-ai-orchestrator/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a hardware engineering query
// @Description Classifies intent and domain, scores complexity and selects a model tier with a fallback chain.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Query and optional user context"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		status := h.mapError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.Analyze: %v", err)
			response.InternalError(c)
			return
		}
		response.ErrorWithStatus(c, status, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(c.GetString(middleware.HeaderRequestID), output))
}

// Feedback godoc
// @Summary     Submit feedback on a routing decision
// @Description Records whether the selected model was the right call; feeds the accuracy window.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback on an earlier decision"
// @Success     200 {object} query.FeedbackReceipt
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.uc.SubmitFeedback(ctx, req.toInput())
	if err != nil {
		status := h.mapError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
			response.InternalError(c)
			return
		}
		response.ErrorWithStatus(c, status, err)
		return
	}

	response.OK(c, receipt)
}

// Accuracy godoc
// @Summary     Routing accuracy over the recent feedback window
// @Tags        Query
// @Produce     json
// @Success     200 {object} metrics.AccuracyReport
// @Router      /api/v1/metrics/accuracy [GET]
func (h *handler) Accuracy(c *gin.Context) {
	response.OK(c, h.uc.Accuracy(c.Request.Context()))
}

// Status godoc
// @Summary     Engine status and active catalog shape
// @Tags        Query
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}
