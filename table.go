package estimate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/vijayhardaha/estimate-generator-cli/internal/numutil"
	"github.com/vijayhardaha/estimate-generator-cli/internal/slugutil"
)

// Canonical pricing table column names. Header text is slugified
// before matching, so "Item", " PRICE " and "Qty" all resolve.
const (
	columnItem  = "item"
	columnPrice = "price"
	columnQty   = "qty"
)

// tableExtractor abstracts pricing table extraction from the Markdown body.
type tableExtractor interface {
	ExtractLineItems(ctx context.Context, body string) ([]LineItem, error)
}

// goldmarkExtractor extracts the pricing table using Goldmark's GFM
// table parser.
type goldmarkExtractor struct {
	md goldmark.Markdown
}

// newGoldmarkExtractor creates a goldmarkExtractor with the table
// extension enabled.
func newGoldmarkExtractor() *goldmarkExtractor {
	return &goldmarkExtractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// rawRow maps slugified column names to raw cell values.
// Columns beyond the canonical three are carried here and dropped
// during validation.
type rawRow map[string]string

// ExtractLineItems parses the Markdown body, locates the first pricing
// table, and validates every row. All row-level violations are
// aggregated into a single ErrTableValidation; a document without a
// table fails with ErrNoTable. A header-only table is valid and yields
// zero line items.
func (e *goldmarkExtractor) ExtractLineItems(ctx context.Context, body string) ([]LineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(body)
	doc := e.md.Parser().Parse(text.NewReader(src))

	table := findFirstTable(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	rows, err := collectRows(table, src)
	if err != nil {
		return nil, err
	}

	return validateRows(rows)
}

// findFirstTable walks the AST and returns the first table node.
func findFirstTable(doc ast.Node) *east.Table {
	var table *east.Table
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*east.Table); ok {
			table = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return table
}

// collectRows turns a table node into rawRow records keyed by
// slugified header text. Fails fast when a canonical column is absent.
func collectRows(table *east.Table, src []byte) ([]rawRow, error) {
	var headers []string
	var rows []rawRow

	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *east.TableHeader:
			headers = cellValues(node, src)
			for i, h := range headers {
				headers[i] = slugutil.Slug(h, true)
			}
		case *east.TableRow:
			cells := cellValues(node, src)
			row := make(rawRow, len(headers))
			for i, h := range headers {
				if i < len(cells) {
					row[h] = cells[i]
				}
			}
			rows = append(rows, row)
		}
	}

	for _, required := range []string{columnItem, columnPrice, columnQty} {
		if !slices.Contains(headers, required) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	return rows, nil
}

// cellValues extracts the text of every cell in a header or data row.
func cellValues(row ast.Node, src []byte) []string {
	var values []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		values = append(values, strings.TrimSpace(nodeText(cell, src)))
	}
	return values
}

// nodeText concatenates the text content of a node's descendants.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// validateRows checks price and quantity cells independently and
// reports every violation, one message per offending cell, identified
// by 1-based row index.
func validateRows(rows []rawRow) ([]LineItem, error) {
	items := make([]LineItem, 0, len(rows))
	var violations []string

	for i, row := range rows {
		price, priceErr := numutil.ParsePrice(row[columnPrice])
		if priceErr != nil {
			violations = append(violations, fmt.Sprintf("Object %d: Invalid Price", i+1))
		}

		qty, qtyErr := numutil.ParseQuantity(row[columnQty])
		if qtyErr != nil {
			violations = append(violations, fmt.Sprintf("Object %d: Invalid Quantity", i+1))
		}

		if priceErr == nil && qtyErr == nil {
			items = append(items, LineItem{
				Item:  row[columnItem],
				Price: price,
				Qty:   qty,
			})
		}
	}

	if len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableValidation, strings.Join(violations, "; "))
	}

	return items, nil
}
