package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
)

const (
	// ImageField is the multipart field carrying the screenshot.
	ImageField = "image"

	// DefaultMaxUploadBytes bounds the request body.
	DefaultMaxUploadBytes int64 = 20 << 20

	livenessText = "UX Audit Tool backend is running"
)

// Runner runs one audit. *audit.Auditor satisfies it.
type Runner interface {
	Run(ctx context.Context, image []byte) (*audit.Report, error)
}

// Handler serves the audit routes.
type Handler struct {
	runner    Runner
	logger    *slog.Logger
	maxUpload int64
}

// NewHandler creates a Handler. A non-positive maxUpload uses
// DefaultMaxUploadBytes; a nil logger discards output.
func NewHandler(runner Runner, logger *slog.Logger, maxUpload int64) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &Handler{runner: runner, logger: logger, maxUpload: maxUpload}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger(), cors())

	r.GET("/", h.liveness)
	r.GET("/healthz", h.health)
	api := r.Group("/api/audit")
	api.POST("/upload", h.upload)
	return r
}

func (h *Handler) liveness(c *gin.Context) {
	c.String(http.StatusOK, livenessText)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	data, err := readImage(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
			return
		}
		h.logger.Info("http.upload_rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": audit.ErrNoImage.Error()})
		return
	}

	report, err := h.runner.Run(c.Request.Context(), data)
	if err != nil {
		h.logger.Error("http.audit_failed", "error", err, "bytes", len(data))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error during analysis"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// readImage returns the uploaded image bytes, or an error wrapping
// audit.ErrNoImage when the request carries none.
func readImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(ImageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errors.Join(audit.ErrNoImage, err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Join(audit.ErrNoImage, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Join(audit.ErrNoImage, err)
	}
	if len(data) == 0 {
		return nil, audit.ErrNoImage
	}
	return data, nil
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
