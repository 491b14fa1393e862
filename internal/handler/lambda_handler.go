package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"imglabeler/internal/domain"
	"imglabeler/internal/logger"
	"imglabeler/internal/service"
)

// LambdaHandler turns S3 upload notifications into label responses.
type LambdaHandler struct {
	labelService service.LabelService
}

// NewLambdaHandler creates a new LambdaHandler.
func NewLambdaHandler(labelService service.LabelService) *LambdaHandler {
	return &LambdaHandler{labelService: labelService}
}

// Handle is the Lambda entry point. Only the first record of the event is
// processed. Any failure is returned as-is so the runtime reports an
// invocation error; no error response body is produced.
func (h *LambdaHandler) Handle(ctx context.Context, event events.S3Event) (domain.Response, error) {
	if !logger.HasContextLogger(ctx) {
		ctx = logger.WithRequestID(ctx, requestID(ctx))
	}

	n, err := domain.NotificationFromEvent(event)
	if err != nil {
		return domain.Response{}, err
	}

	labels, err := h.labelService.Detect(ctx, n)
	if err != nil {
		return domain.Response{}, err
	}

	return domain.NewLabelResponse(labels)
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}
