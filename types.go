package estimate

import (
	"fmt"
	"strings"
	"time"
)

// Output type constants.
const (
	TypePNG  = "png"
	TypeJPG  = "jpg"
	TypeJPEG = "jpeg"
)

// ValidateOutputType checks that the requested output type is supported.
// An empty type is valid and means PNG.
func ValidateOutputType(t string) error {
	switch strings.ToLower(t) {
	case "", TypePNG, TypeJPG, TypeJPEG:
		return nil
	}
	return fmt.Errorf("%w: %q (must be png, jpg, or jpeg)", ErrUnsupportedType, t)
}

// Input contains generation parameters.
type Input struct {
	Markdown string // Markdown content with front-matter (required)
	Type     string // Output image type: "png" (default), "jpg", "jpeg"
	CSS      string // Custom stylesheet (optional, replaces the embedded default)
}

// LineItem is one validated row of the pricing table.
type LineItem struct {
	Item  string
	Price float64
	Qty   int
}

// PricedLineItem extends LineItem with derived amounts and their
// formatted display variants.
type PricedLineItem struct {
	LineItem

	Total        float64 // Price * Qty
	PriceWithTax float64 // Price + Price*serviceTax/100
	TotalWithTax float64 // Qty * PriceWithTax

	PriceHTML        string
	TotalHTML        string
	PriceWithTaxHTML string
	TotalWithTaxHTML string
}

// Totals holds the invoice-level monetary figures.
type Totals struct {
	Subtotal    float64 // sum of TotalWithTax over all line items
	Tax         float64 // invoice tax rate in percent
	TaxAmt      float64 // Subtotal * Tax / 100
	OtherFee    float64 // fee rate in percent
	OtherFeeAmt float64 // Subtotal * OtherFee / 100
	Discount    float64 // flat amount subtracted from the total
	Total       float64 // Subtotal + TaxAmt + OtherFeeAmt - Discount

	SubtotalHTML    string
	TaxAmtHTML      string
	OtherFeeAmtHTML string
	DiscountHTML    string
	TotalHTML       string // rounded to the nearest whole amount for display
}

// Parameters holds the scalar financial configuration from front-matter.
// Each numeric field resolves to 0 when absent, unparsable, or
// non-positive; Currency defaults to "usd".
type Parameters struct {
	Currency   string
	ServiceTax float64
	Tax        float64
	OtherFee   float64
	Discount   float64
}

// Client identifies the invoice recipient.
type Client struct {
	Name     string
	Company  string
	Location string
	Email    string
}

// Developer identifies the invoice issuer.
type Developer struct {
	Name     string
	Email    string
	Skype    string
	Twitter  string
	Website  string
	Location string
}

// Project holds document-level metadata. Description and Notes carry
// generated markup fragments after organization, not raw text.
type Project struct {
	Title       string
	Date        string
	Description string
	Notes       string
}

// Metadata groups the organized front-matter records.
type Metadata struct {
	Client     Client
	Developer  Developer
	Project    Project
	Parameters Parameters
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	now     func() time.Time
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the rasterization timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("estimate: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
