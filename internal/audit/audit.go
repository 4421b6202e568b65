package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dadaauditux/ux-audit-tool/internal/boxes"
	"github.com/Dadaauditux/ux-audit-tool/internal/contrast"
	"github.com/Dadaauditux/ux-audit-tool/internal/grouping"
	"github.com/Dadaauditux/ux-audit-tool/internal/imaging"
	"github.com/Dadaauditux/ux-audit-tool/internal/model"
	"github.com/Dadaauditux/ux-audit-tool/internal/rules"
)

var (
	// ErrNoImage is returned by transports when a request carries no image.
	ErrNoImage = errors.New("no image provided")

	// ErrInvalidOptions wraps threshold validation failures.
	ErrInvalidOptions = errors.New("invalid audit options")
)

// Detector finds words in an encoded image. An empty result means no text.
type Detector interface {
	Detect(ctx context.Context, image []byte) ([]model.RawWord, error)
}

// PixelOpener opens encoded image bytes for pixel sampling.
type PixelOpener func(image []byte) (contrast.PixelSource, error)

// OpenRaster decodes image bytes with the imaging package.
func OpenRaster(data []byte) (contrast.PixelSource, error) {
	r, err := imaging.NewRaster(data)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Report is the result of one audit: one merged issue list per category.
// JSON field names match what the web client reads.
type Report struct {
	TextSize   []model.Issue `json:"groupedTextSizeIssues"`
	Contrast   []model.Issue `json:"groupedContrastIssues"`
	ButtonSize []model.Issue `json:"groupedButtonSizeIssues"`
	Heading    []model.Issue `json:"headingIssues"`
	Spacing    []model.Issue `json:"spacingIssues"`
	Alignment  []model.Issue `json:"alignmentIssues"`
}

// EmptyReport returns a report whose lists are empty, not nil.
func EmptyReport() *Report {
	return &Report{
		TextSize:   []model.Issue{},
		Contrast:   []model.Issue{},
		ButtonSize: []model.Issue{},
		Heading:    []model.Issue{},
		Spacing:    []model.Issue{},
		Alignment:  []model.Issue{},
	}
}

// Total returns the number of merged records across all categories.
func (r *Report) Total() int {
	return len(r.TextSize) + len(r.Contrast) + len(r.ButtonSize) +
		len(r.Heading) + len(r.Spacing) + len(r.Alignment)
}

// Auditor runs audits. It holds no per-request state and is safe for
// concurrent use as long as its Detector is.
type Auditor struct {
	detector Detector
	open     PixelOpener
	opts     Options
	logger   *slog.Logger
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithOptions sets the thresholds. Zero fields keep their defaults.
func WithOptions(o Options) Option {
	return func(a *Auditor) { a.opts = o.WithDefaults() }
}

// WithPixelOpener replaces the image decoder used for contrast sampling.
func WithPixelOpener(open PixelOpener) Option {
	return func(a *Auditor) { a.open = open }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Auditor) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Auditor around a text detector.
func New(detector Detector, options ...Option) *Auditor {
	a := &Auditor{
		detector: detector,
		open:     OpenRaster,
		opts:     DefaultOptions(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Options returns the effective thresholds.
func (a *Auditor) Options() Options { return a.opts }

// Run audits one encoded image with the Auditor's thresholds.
func (a *Auditor) Run(ctx context.Context, image []byte) (*Report, error) {
	return a.RunWithOptions(ctx, image, a.opts)
}

// RunWithOptions audits one encoded image with per-call thresholds.
// Zero fields in opts fall back to defaults.
func (a *Auditor) RunWithOptions(ctx context.Context, image []byte, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	if len(image) == 0 {
		a.logger.Warn("audit.empty_image")
		return EmptyReport(), nil
	}

	words, err := a.detector.Detect(ctx, image)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		a.logger.Warn("audit.detection_failed", "error", err)
		words = nil
	}

	tbs, stats := boxes.NormalizeWithStats(words)
	a.logger.Debug("audit.normalized",
		"raw", len(words), "kept", stats.Kept, "dropped", stats.Dropped())

	if len(tbs) == 0 {
		return EmptyReport(), nil
	}

	var (
		textSize, buttonSize, heading, spacing, alignment []model.Issue
	)
	var g errgroup.Group
	g.Go(func() error {
		textSize = rules.TextSize(tbs, opts.MinTextPx)
		return nil
	})
	g.Go(func() error {
		buttonSize = rules.TargetSize(rules.TargetCandidates(tbs, opts.TargetMinTextChars), opts.MinTargetPx)
		return nil
	})
	g.Go(func() error {
		heading = rules.HeadingHierarchy(tbs, opts.MinHeadingPx)
		return nil
	})
	g.Go(func() error {
		spacing = rules.Spacing(tbs, opts.MinSpacingPx)
		return nil
	})
	g.Go(func() error {
		alignment = rules.Alignment(tbs, opts.AlignTolerancePx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	src, err := a.open(image)
	if err != nil {
		return nil, fmt.Errorf("open image for sampling: %w", err)
	}
	contrastIssues, err := contrast.NewSampler(opts.MinContrast, a.logger).Check(ctx, src, tbs)
	if err != nil {
		return nil, fmt.Errorf("contrast check: %w", err)
	}

	report := &Report{
		TextSize:   grouping.MergeByLine(textSize, opts.LineThresholdPx),
		Contrast:   grouping.MergeByLine(contrastIssues, opts.LineThresholdPx),
		ButtonSize: grouping.MergeByLine(buttonSize, opts.LineThresholdPx),
		Heading:    grouping.MergeByLine(heading, opts.LineThresholdPx),
		Spacing:    grouping.MergeByLine(spacing, opts.LineThresholdPx),
		Alignment:  grouping.MergeByLine(alignment, opts.LineThresholdPx),
	}

	a.logger.Info("audit.completed",
		"boxes", len(tbs),
		"text_size", len(report.TextSize),
		"contrast", len(report.Contrast),
		"button_size", len(report.ButtonSize),
		"heading", len(report.Heading),
		"spacing", len(report.Spacing),
		"alignment", len(report.Alignment))

	return report, nil
}
