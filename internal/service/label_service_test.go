package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imglabeler/internal/config"
	"imglabeler/internal/domain"
	"imglabeler/internal/port"
	"imglabeler/internal/service"
	"imglabeler/mocks"
)

func testRekognitionConfig() config.RekognitionConfig {
	return config.RekognitionConfig{MaxLabels: 10}
}

func TestLabelService_Detect_Success(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	ref := port.ObjectRef{Bucket: "b", Key: "k"}
	resolver.On("Resolve", mock.Anything, "b", "k").Return(ref, nil)
	detector.On("DetectLabels", mock.Anything, port.DetectInput{Ref: ref, MaxLabels: 10}).
		Return([]port.Label{{Name: "Cat", Confidence: 99}, {Name: "Dog", Confidence: 80}}, nil).
		Once()

	labels, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "k"})

	require.NoError(t, err)
	assert.Equal(t, domain.LabelResult{"Cat", "Dog"}, labels)
	resolver.AssertExpectations(t)
	detector.AssertExpectations(t)
	detector.AssertNumberOfCalls(t, "DetectLabels", 1)
}

func TestLabelService_Detect_PreservesOrderAndDuplicates(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	ref := port.ObjectRef{Bucket: "b", Key: "k"}
	resolver.On("Resolve", mock.Anything, "b", "k").Return(ref, nil)
	detector.On("DetectLabels", mock.Anything, mock.Anything).Return([]port.Label{
		{Name: "Zebra"}, {Name: "Animal"}, {Name: "Zebra"}, {Name: "Mammal"},
	}, nil)

	labels, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "k"})

	require.NoError(t, err)
	assert.Equal(t, domain.LabelResult{"Zebra", "Animal", "Zebra", "Mammal"}, labels)
}

func TestLabelService_Detect_EmptyLabels(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	ref := port.ObjectRef{Bucket: "b", Key: "k"}
	resolver.On("Resolve", mock.Anything, "b", "k").Return(ref, nil)
	detector.On("DetectLabels", mock.Anything, mock.Anything).Return([]port.Label{}, nil)

	labels, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "k"})

	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestLabelService_Detect_PassesConfiguredLimits(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := config.RekognitionConfig{MaxLabels: 3, MinConfidence: 80}
	svc := service.NewLabelService(resolver, detector, &cfg)

	ref := port.ObjectRef{Bucket: "b", Key: "k"}
	resolver.On("Resolve", mock.Anything, "b", "k").Return(ref, nil)
	detector.On("DetectLabels", mock.Anything, port.DetectInput{Ref: ref, MaxLabels: 3, MinConfidence: 80}).
		Return([]port.Label{{Name: "Tree"}}, nil)

	_, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "k"})

	require.NoError(t, err)
	detector.AssertExpectations(t)
}

func TestLabelService_Detect_MissingBucket(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	labels, err := svc.Detect(context.Background(), domain.UploadNotification{Key: "k"})

	assert.Nil(t, labels)
	assert.ErrorIs(t, err, domain.ErrMissingBucket)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	detector.AssertNotCalled(t, "DetectLabels", mock.Anything, mock.Anything)
}

func TestLabelService_Detect_MissingKey(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	_, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b"})

	assert.ErrorIs(t, err, domain.ErrMissingKey)
	detector.AssertNotCalled(t, "DetectLabels", mock.Anything, mock.Anything)
}

func TestLabelService_Detect_ResolveError(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	resolver.On("Resolve", mock.Anything, "b", "gone.jpg").
		Return(port.ObjectRef{}, domain.ErrObjectNotFound)

	_, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "gone.jpg"})

	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	detector.AssertNotCalled(t, "DetectLabels", mock.Anything, mock.Anything)
}

func TestLabelService_Detect_DetectorError(t *testing.T) {
	resolver := new(mocks.MockObjectResolver)
	detector := new(mocks.MockLabelDetector)
	cfg := testRekognitionConfig()
	svc := service.NewLabelService(resolver, detector, &cfg)

	boom := errors.New("throttled")
	ref := port.ObjectRef{Bucket: "b", Key: "k"}
	resolver.On("Resolve", mock.Anything, "b", "k").Return(ref, nil)
	detector.On("DetectLabels", mock.Anything, mock.Anything).Return(nil, boom).Once()

	labels, err := svc.Detect(context.Background(), domain.UploadNotification{Bucket: "b", Key: "k"})

	assert.Nil(t, labels)
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)
	assert.ErrorIs(t, err, boom)
	detector.AssertNumberOfCalls(t, "DetectLabels", 1)
}
