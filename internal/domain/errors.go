package domain

import "errors"

var (
	ErrNoRecords       = errors.New("upload notification has no records")
	ErrMissingBucket   = errors.New("upload notification is missing the bucket name")
	ErrMissingKey      = errors.New("upload notification is missing the object key")
	ErrInvalidKey      = errors.New("object key is not a valid url-encoded string")
	ErrObjectNotFound  = errors.New("referenced object does not exist")
	ErrDetectionFailed = errors.New("label detection failed")
)
