package estimate

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/vijayhardaha/estimate-generator-cli/internal/assets"
)

// crlfOrCR normalizes line endings before any parsing.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Service orchestrates the markdown-to-invoice pipeline.
type Service struct {
	cfg       serviceConfig
	extractor tableExtractor
	renderer  documentRenderer
	converter imageConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{timeout: defaultTimeout, now: time.Now},
		extractor: newGoldmarkExtractor(),
		renderer:  newTemplateRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create image converter if not injected (e.g., by tests)
	if s.converter == nil {
		s.converter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// RenderHTML runs the pure computation pipeline and returns the fully
// substituted markup: front-matter organization, table extraction and
// validation, totals derivation, and placeholder substitution.
func (s *Service) RenderHTML(ctx context.Context, input Input) (string, error) {
	if input.Markdown == "" {
		return "", ErrEmptyMarkdown
	}

	content := crlfOrCR.ReplaceAllString(input.Markdown, "\n")
	front, body := splitFrontMatter(content)

	fields, err := parseFrontMatter(front)
	if err != nil {
		return "", err
	}

	meta, err := organizeMetadata(fields, s.cfg.now())
	if err != nil {
		return "", fmt.Errorf("organizing metadata: %w", err)
	}

	items, err := s.extractor.ExtractLineItems(ctx, body)
	if err != nil {
		return "", fmt.Errorf("extracting table: %w", err)
	}

	priced, err := priceLineItems(items, meta.Parameters)
	if err != nil {
		return "", err
	}

	totals, err := calculateTotals(priced, meta.Parameters)
	if err != nil {
		return "", err
	}

	css, err := s.resolveCSS(input.CSS)
	if err != nil {
		return "", err
	}

	markup, err := s.renderer.RenderDocument(ctx, meta, priced, totals, css)
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	return markup, nil
}

// Generate runs the full pipeline and rasterizes the markup into an
// image of the requested type (PNG when unset).
func (s *Service) Generate(ctx context.Context, input Input) ([]byte, error) {
	if err := ValidateOutputType(input.Type); err != nil {
		return nil, err
	}

	markup, err := s.RenderHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	outputType := input.Type
	if outputType == "" {
		outputType = TypePNG
	}

	img, err := s.converter.ToImage(ctx, markup, outputType)
	if err != nil {
		return nil, fmt.Errorf("rasterizing: %w", err)
	}

	return img, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.converter != nil {
		return s.converter.Close()
	}
	return nil
}

// resolveCSS returns the custom stylesheet when provided, otherwise
// the embedded default.
func (s *Service) resolveCSS(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	return assets.LoadStyle("default")
}
