package service

import (
	"context"
	"fmt"

	"imglabeler/internal/config"
	"imglabeler/internal/domain"
	"imglabeler/internal/logger"
	"imglabeler/internal/port"
)

// LabelService defines the label detection contract.
type LabelService interface {
	Detect(ctx context.Context, n domain.UploadNotification) (domain.LabelResult, error)
}

type labelService struct {
	resolver port.ObjectResolver
	detector port.LabelDetector
	cfg      *config.RekognitionConfig
}

// NewLabelService creates a new LabelService implementation.
func NewLabelService(
	resolver port.ObjectResolver,
	detector port.LabelDetector,
	cfg *config.RekognitionConfig,
) LabelService {
	return &labelService{
		resolver: resolver,
		detector: detector,
		cfg:      cfg,
	}
}

// Detect runs one detection request against the referenced object and
// returns the label names in the order the detector produced them.
func (s *labelService) Detect(ctx context.Context, n domain.UploadNotification) (domain.LabelResult, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.resolver.Resolve(ctx, n.Bucket, n.Key)
	if err != nil {
		return nil, fmt.Errorf("resolving %s/%s: %w", n.Bucket, n.Key, err)
	}

	l := logger.FromContext(ctx)
	l.Info().Str("bucket", ref.Bucket).Str("key", ref.Key).Msg("detecting labels")

	labels, err := s.detector.DetectLabels(ctx, port.DetectInput{
		Ref:           ref,
		MaxLabels:     s.cfg.MaxLabels,
		MinConfidence: s.cfg.MinConfidence,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDetectionFailed, err)
	}

	names := make(domain.LabelResult, 0, len(labels))
	for _, label := range labels {
		l.Debug().Str("label", label.Name).Float32("confidence", label.Confidence).Msg("label detected")
		names = append(names, label.Name)
	}

	l.Info().Str("bucket", ref.Bucket).Str("key", ref.Key).Int("label_count", len(names)).Msg("labels detected")
	return names, nil
}
