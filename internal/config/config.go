package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	AWS         AWSConfig
	S3          S3Config
	Rekognition RekognitionConfig
	Log         LogConfig
}

// ServerConfig holds settings for the local invoke server.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AWSConfig holds settings shared by every AWS client.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// HasStaticCredentials reports whether an explicit key pair was configured.
func (a *AWSConfig) HasStaticCredentials() bool {
	return a.AccessKey != "" && a.SecretKey != ""
}

// S3Config holds object reference resolver settings.
type S3Config struct {
	Endpoint     string `mapstructure:"endpoint"`
	VerifyObject bool   `mapstructure:"verify_object"`
}

// RekognitionConfig holds label detection settings.
type RekognitionConfig struct {
	Endpoint      string  `mapstructure:"endpoint"`
	MaxLabels     int32   `mapstructure:"max_labels"`
	MinConfidence float32 `mapstructure:"min_confidence"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if c.Rekognition.MaxLabels < 1 {
		return fmt.Errorf("rekognition.max_labels must be at least 1, got %d", c.Rekognition.MaxLabels)
	}
	if c.Rekognition.MinConfidence < 0 || c.Rekognition.MinConfidence > 100 {
		return fmt.Errorf("rekognition.min_confidence must be between 0 and 100, got %v", c.Rekognition.MinConfidence)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// Load reads configuration from environment variables with the IMGLABELER_
// prefix. A .env file in the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("IMGLABELER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key", "")
	v.SetDefault("aws.secret_key", "")

	// S3 defaults
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.verify_object", false)

	// Rekognition defaults
	v.SetDefault("rekognition.endpoint", "")
	v.SetDefault("rekognition.max_labels", 10)
	v.SetDefault("rekognition.min_confidence", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	envBindings := map[string]string{
		"server.port":                "IMGLABELER_SERVER_PORT",
		"server.read_timeout":        "IMGLABELER_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "IMGLABELER_SERVER_WRITE_TIMEOUT",
		"server.environment":         "IMGLABELER_SERVER_ENVIRONMENT",
		"aws.region":                 "IMGLABELER_AWS_REGION",
		"aws.access_key":             "IMGLABELER_AWS_ACCESS_KEY",
		"aws.secret_key":             "IMGLABELER_AWS_SECRET_KEY",
		"s3.endpoint":                "IMGLABELER_S3_ENDPOINT",
		"s3.verify_object":           "IMGLABELER_S3_VERIFY_OBJECT",
		"rekognition.endpoint":       "IMGLABELER_REKOGNITION_ENDPOINT",
		"rekognition.max_labels":     "IMGLABELER_REKOGNITION_MAX_LABELS",
		"rekognition.min_confidence": "IMGLABELER_REKOGNITION_MIN_CONFIDENCE",
		"log.level":                  "IMGLABELER_LOG_LEVEL",
		"log.format":                 "IMGLABELER_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Inside Lambda the runtime sets AWS_REGION; honour it unless overridden.
	region := v.GetString("aws.region")
	if r := os.Getenv("AWS_REGION"); r != "" && os.Getenv("IMGLABELER_AWS_REGION") == "" {
		region = r
	}

	cfg.Server = ServerConfig{
		Port:         v.GetString("server.port"),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.AWS = AWSConfig{
		Region:    region,
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.S3 = S3Config{
		Endpoint:     v.GetString("s3.endpoint"),
		VerifyObject: v.GetBool("s3.verify_object"),
	}
	cfg.Rekognition = RekognitionConfig{
		Endpoint:      v.GetString("rekognition.endpoint"),
		MaxLabels:     v.GetInt32("rekognition.max_labels"),
		MinConfidence: float32(v.GetFloat64("rekognition.min_confidence")),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
