package estimate

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/vijayhardaha/estimate-generator-cli/internal/assets"
)

// placeholderPattern matches {{name}} tokens. Lookup is a flat,
// case-sensitive key match; nesting and conditionals are not supported.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// documentRenderer merges organized metadata and computed totals into
// the final markup.
type documentRenderer interface {
	RenderDocument(ctx context.Context, meta Metadata, items []PricedLineItem, totals Totals, css string) (string, error)
}

// templateRenderer substitutes placeholders in the embedded invoice
// template.
type templateRenderer struct {
	tmpl string
}

// newTemplateRenderer creates a templateRenderer with the embedded
// template. Panics if the template cannot be loaded (programmer error).
func newTemplateRenderer() *templateRenderer {
	tmpl, err := assets.LoadTemplate("invoice")
	if err != nil {
		panic("failed to load invoice template: " + err.Error())
	}
	return &templateRenderer{tmpl: tmpl}
}

// RenderDocument builds the merged field map and substitutes it into
// the template. Placeholders without a corresponding field are left
// verbatim, so templates may carry optional sections.
func (r *templateRenderer) RenderDocument(ctx context.Context, meta Metadata, items []PricedLineItem, totals Totals, css string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields := buildFieldMap(meta, items, totals, css)
	return substitutePlaceholders(r.tmpl, fields), nil
}

// substitutePlaceholders replaces every {{name}} token that has a
// corresponding field. Unmatched tokens stay intact.
func substitutePlaceholders(tmpl string, fields map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := fields[name]; ok {
			return value
		}
		return token
	})
}

// buildFieldMap flattens the organized records into the immutable
// substitution map. Keys mirror the front-matter field names; derived
// figures use the *Html convention for formatted variants.
func buildFieldMap(meta Metadata, items []PricedLineItem, totals Totals, css string) map[string]string {
	return map[string]string{
		"title":       meta.Project.Title,
		"date":        meta.Project.Date,
		"description": meta.Project.Description,
		"notes":       meta.Project.Notes,

		"clientName":     meta.Client.Name,
		"clientCompany":  meta.Client.Company,
		"clientLocation": meta.Client.Location,
		"clientEmail":    meta.Client.Email,

		"devName":     meta.Developer.Name,
		"devEmail":    meta.Developer.Email,
		"devSkype":    meta.Developer.Skype,
		"devTwitter":  meta.Developer.Twitter,
		"devWebsite":  meta.Developer.Website,
		"devLocation": meta.Developer.Location,

		"currency":   meta.Parameters.Currency,
		"serviceTax": formatRate(meta.Parameters.ServiceTax),
		"tax":        formatRate(totals.Tax),
		"otherFee":   formatRate(totals.OtherFee),
		"discount":   formatRate(totals.Discount),

		"items":           itemRowsMarkup(items),
		"subtotalHtml":    totals.SubtotalHTML,
		"taxAmtHtml":      totals.TaxAmtHTML,
		"otherFeeAmtHtml": totals.OtherFeeAmtHTML,
		"discountHtml":    totals.DiscountHTML,
		"totalHtml":       totals.TotalHTML,

		"styles": css,
	}
}

// itemRowsMarkup renders the line items as table row fragments.
// The displayed unit price includes the per-unit service tax.
func itemRowsMarkup(items []PricedLineItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b,
			"<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>",
			html.EscapeString(item.Item),
			item.PriceWithTaxHTML,
			item.Qty,
			item.TotalWithTaxHTML,
		)
	}
	return b.String()
}

// formatRate renders a rate or amount without trailing zeros, matching
// how it was written in the front-matter.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
