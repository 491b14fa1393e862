package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"imglabeler/internal/awsutil"
	"imglabeler/internal/config"
	rekdetector "imglabeler/internal/detector/rekognition"
	"imglabeler/internal/handler"
	"imglabeler/internal/logger"
	"imglabeler/internal/service"
	s3storage "imglabeler/internal/storage/s3"
)

func main() {
	h, err := setup(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("lambda init failed")
	}
	lambda.Start(h.Handle)
}

func setup(ctx context.Context) (*handler.LambdaHandler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	awsCfg, err := awsutil.LoadConfig(ctx, &cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS config: %w", err)
	}

	resolver := s3storage.NewResolver(awsCfg, &cfg.S3)
	detector := rekdetector.NewDetector(awsCfg, &cfg.Rekognition)
	labelSvc := service.NewLabelService(resolver, detector, &cfg.Rekognition)

	log.Info().
		Str("region", cfg.AWS.Region).
		Int32("max_labels", cfg.Rekognition.MaxLabels).
		Bool("verify_object", cfg.S3.VerifyObject).
		Msg("label handler ready")

	return handler.NewLambdaHandler(labelSvc), nil
}
