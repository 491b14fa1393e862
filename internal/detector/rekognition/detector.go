package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"imglabeler/internal/config"
	"imglabeler/internal/port"
)

// DetectLabelsAPI is the subset of the Rekognition client the detector uses.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type detector struct {
	client DetectLabelsAPI
}

// NewDetector creates a Rekognition-backed LabelDetector.
func NewDetector(awsCfg aws.Config, cfg *config.RekognitionConfig) port.LabelDetector {
	var opts []func(*rekognition.Options)
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *rekognition.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return NewDetectorWithClient(rekognition.NewFromConfig(awsCfg, opts...))
}

// NewDetectorWithClient creates a LabelDetector around an existing client.
func NewDetectorWithClient(client DetectLabelsAPI) port.LabelDetector {
	return &detector{client: client}
}

func (d *detector) DetectLabels(ctx context.Context, input port.DetectInput) ([]port.Label, error) {
	params := &rekognition.DetectLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(input.Ref.Bucket),
				Name:   aws.String(input.Ref.Key),
			},
		},
		MaxLabels: aws.Int32(input.MaxLabels),
	}
	if input.MinConfidence > 0 {
		params.MinConfidence = aws.Float32(input.MinConfidence)
	}

	resp, err := d.client.DetectLabels(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	labels := make([]port.Label, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		labels = append(labels, port.Label{
			Name:       aws.ToString(l.Name),
			Confidence: aws.ToFloat32(l.Confidence),
		})
	}
	return labels, nil
}
