package domain

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// UploadNotification identifies the object an upload event refers to.
type UploadNotification struct {
	Bucket string
	Key    string
}

// Validate reports whether both bucket and key are present.
func (n UploadNotification) Validate() error {
	if n.Bucket == "" {
		return ErrMissingBucket
	}
	if n.Key == "" {
		return ErrMissingKey
	}
	return nil
}

// NotificationFromEvent extracts the first record of an S3 event. Any further
// records in the batch are ignored.
func NotificationFromEvent(event events.S3Event) (UploadNotification, error) {
	if len(event.Records) == 0 {
		return UploadNotification{}, ErrNoRecords
	}
	entity := event.Records[0].S3
	n := UploadNotification{
		Bucket: entity.Bucket.Name,
		Key:    entity.Object.Key,
	}
	if err := n.Validate(); err != nil {
		return UploadNotification{}, err
	}
	return n, nil
}

// LabelResult is the ordered list of label names returned by the detector.
type LabelResult []string

// Response is the value returned to the invoking platform.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewLabelResponse encodes labels as the JSON body of a 200 response.
// A nil result is encoded as an empty array.
func NewLabelResponse(labels LabelResult) (Response, error) {
	if labels == nil {
		labels = LabelResult{}
	}
	body, err := json.Marshal(labels)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: 200, Body: string(body)}, nil
}
