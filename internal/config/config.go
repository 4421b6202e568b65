package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
	"github.com/Dadaauditux/ux-audit-tool/internal/ocr"
)

// ErrInvalidConfig is wrapped by every load or validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultAddr        = ":5000"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultMaxUploadMB = 20
)

// OCR configures the Tesseract detector.
type OCR struct {
	Language       string  `yaml:"language"`
	TessdataPrefix string  `yaml:"tessdata_prefix"`
	Preprocess     bool    `yaml:"preprocess"`
	MinConfidence  float64 `yaml:"min_confidence"`
}

// Config is the full service configuration.
type Config struct {
	Addr        string        `yaml:"addr"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	MaxUploadMB int           `yaml:"max_upload_mb"`
	OCR         OCR           `yaml:"ocr"`
	Thresholds  audit.Options `yaml:"thresholds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		MaxUploadMB: DefaultMaxUploadMB,
		OCR:         OCR{Language: ocr.DefaultLanguage},
		Thresholds:  audit.DefaultOptions(),
	}
}

// Load builds a Config. An empty path skips the file step.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.load %s: %w: %v", path, ErrInvalidConfig, err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	cfg.Thresholds = cfg.Thresholds.WithDefaults()
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = ocr.DefaultLanguage
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Addr = ":" + v
	}
	if v, ok := lookup("UX_AUDIT_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("UX_AUDIT_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("UX_AUDIT_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("UX_AUDIT_MAX_UPLOAD_MB"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: UX_AUDIT_MAX_UPLOAD_MB: %v", ErrInvalidConfig, err)
		}
		cfg.MaxUploadMB = n
	}
	if v, ok := lookup("UX_AUDIT_OCR_LANG"); ok && v != "" {
		cfg.OCR.Language = v
	}
	if v, ok := lookup("TESSDATA_PREFIX"); ok && v != "" {
		cfg.OCR.TessdataPrefix = v
	}
	return nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json (got %q)", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("%w: max_upload_mb must be positive (got %d)", ErrInvalidConfig, c.MaxUploadMB)
	}
	if c.OCR.MinConfidence < 0 || c.OCR.MinConfidence > 100 {
		return fmt.Errorf("%w: ocr.min_confidence must be within 0-100 (got %g)", ErrInvalidConfig, c.OCR.MinConfidence)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: thresholds: %v", ErrInvalidConfig, err)
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Tesseract builds the OCR detector described by c.
func (c Config) Tesseract() *ocr.Tesseract {
	t := ocr.NewTesseract(c.OCR.Language)
	t.TessdataPrefix = c.OCR.TessdataPrefix
	t.Preprocess = c.OCR.Preprocess
	t.MinConfidence = c.OCR.MinConfidence
	return t
}
