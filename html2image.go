package estimate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/vijayhardaha/estimate-generator-cli/internal/fileutil"
)

// imageConverter abstracts HTML to image rasterization to allow
// different backends.
type imageConverter interface {
	ToImage(ctx context.Context, htmlContent, outputType string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ imageConverter = (*rodConverter)(nil)

// Viewport dimensions for rendering. The invoice layout is a fixed
// 760px card, so the viewport only needs to clear it; height grows
// with the full-page capture.
const (
	viewportWidth     = 840
	viewportHeight    = 600
	deviceScaleFactor = 2
	jpegQuality       = 90
)

// rodConverter rasterizes HTML using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodConverter struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodConverter creates a rodConverter with the given timeout.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (c *rodConverter) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// ToImage writes the markup to a temp file, opens it in headless
// Chrome, and captures a full-page screenshot in the requested type.
func (c *rodConverter) ToImage(ctx context.Context, htmlContent, outputType string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ValidateOutputType(outputType); err != nil {
		return nil, err
	}

	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: deviceScaleFactor,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := page.Screenshot(true, buildScreenshotOptions(outputType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageCapture, err)
	}

	return img, nil
}

// buildScreenshotOptions constructs capture options for the output type.
func buildScreenshotOptions(outputType string) *proto.PageCaptureScreenshot {
	switch strings.ToLower(outputType) {
	case TypeJPG, TypeJPEG:
		quality := jpegQuality
		return &proto.PageCaptureScreenshot{
			Format:  proto.PageCaptureScreenshotFormatJpeg,
			Quality: &quality,
		}
	default:
		return &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		}
	}
}
