package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"imglabeler/internal/config"
	"imglabeler/internal/domain"
	"imglabeler/internal/port"
)

// HeadObjectAPI is the subset of the S3 client the resolver uses.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type resolver struct {
	client HeadObjectAPI
	verify bool
}

// NewResolver creates an S3-backed ObjectResolver.
func NewResolver(awsCfg aws.Config, cfg *config.S3Config) port.ObjectResolver {
	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}
	return NewResolverWithClient(s3.NewFromConfig(awsCfg, s3Opts...), cfg)
}

// NewResolverWithClient creates an ObjectResolver around an existing client.
func NewResolverWithClient(client HeadObjectAPI, cfg *config.S3Config) port.ObjectResolver {
	return &resolver{client: client, verify: cfg.VerifyObject}
}

// Resolve decodes the event key and, when verification is enabled, confirms
// the object exists. Without verification no request is made.
func (r *resolver) Resolve(ctx context.Context, bucket, key string) (port.ObjectRef, error) {
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return port.ObjectRef{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidKey, key, err)
	}
	ref := port.ObjectRef{Bucket: bucket, Key: decoded}

	if !r.verify {
		return ref, nil
	}

	_, err = r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return port.ObjectRef{}, fmt.Errorf("s3 head object %s/%s: %w", ref.Bucket, ref.Key, domain.ErrObjectNotFound)
		}
		return port.ObjectRef{}, fmt.Errorf("s3 head object: %w", err)
	}
	return ref, nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
