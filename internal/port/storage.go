package port

import "context"

// ObjectRef points at a single stored object.
type ObjectRef struct {
	Bucket string
	Key    string
}

// ObjectResolver turns the bucket and key carried by an upload notification
// into a reference the label detector can read.
type ObjectResolver interface {
	Resolve(ctx context.Context, bucket, key string) (ObjectRef, error)
}
