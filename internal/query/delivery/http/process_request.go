package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFeedbackReq binds and validates the feedback request body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
