package handler

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"imglabeler/internal/logger"
)

// InvokeHandler exposes the Lambda handler over HTTP for local runs.
type InvokeHandler struct {
	lambda *LambdaHandler
}

// NewInvokeHandler creates a new InvokeHandler.
func NewInvokeHandler(lambda *LambdaHandler) *InvokeHandler {
	return &InvokeHandler{lambda: lambda}
}

// Invoke handles POST /invoke. The body is a raw S3 event; on success the
// response is exactly what the Lambda would have returned.
func (h *InvokeHandler) Invoke(c *gin.Context) {
	var event events.S3Event
	if err := c.ShouldBindJSON(&event); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_EVENT", "request body is not a valid S3 event")
		return
	}

	ctx := c.Request.Context()
	if requestID := c.GetString("request_id"); requestID != "" {
		ctx = logger.WithRequestID(ctx, requestID)
	}

	resp, err := h.lambda.Handle(ctx, event)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
