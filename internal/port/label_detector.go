package port

import "context"

// DetectInput carries the parameters of a single label-detection request.
type DetectInput struct {
	Ref           ObjectRef
	MaxLabels     int32
	MinConfidence float32 // 0 leaves the service default in place
}

// Label is one detected label, in the order the service returned it.
type Label struct {
	Name       string
	Confidence float32
}

// LabelDetector abstracts a hosted image-labeling API.
type LabelDetector interface {
	DetectLabels(ctx context.Context, input DetectInput) ([]Label, error)
}
