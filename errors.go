package estimate

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrNoTable         = errors.New("no pricing table found in document")
	ErrMissingColumn   = errors.New("missing expected column")
	ErrTableValidation = errors.New("table validation failed")

	// Output type validation errors.
	ErrUnsupportedType = errors.New("unsupported output type")

	// Rasterizer errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrImageCapture   = errors.New("image capture failed")
)
