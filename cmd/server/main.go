package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"imglabeler/internal/awsutil"
	"imglabeler/internal/config"
	rekdetector "imglabeler/internal/detector/rekognition"
	"imglabeler/internal/handler"
	"imglabeler/internal/logger"
	"imglabeler/internal/router"
	"imglabeler/internal/service"
	s3storage "imglabeler/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	awsCfg, err := awsutil.LoadConfig(ctx, &cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS config: %w", err)
	}

	// Initialize adapters
	resolver := s3storage.NewResolver(awsCfg, &cfg.S3)
	detector := rekdetector.NewDetector(awsCfg, &cfg.Rekognition)

	// Initialize services
	labelSvc := service.NewLabelService(resolver, detector, &cfg.Rekognition)

	// Initialize handlers
	lambdaH := handler.NewLambdaHandler(labelSvc)
	invokeH := handler.NewInvokeHandler(lambdaH)
	healthH := handler.NewHealthHandler()

	r := router.Setup(invokeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Msg("invoke server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
