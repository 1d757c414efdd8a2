// Package estimate renders Markdown estimate documents to invoice images.
//
// An input document carries YAML-like front-matter (client, developer,
// project, and financial fields) followed by a Markdown body containing
// a single pricing table with Item, Price, and Qty columns.
//
// # Quick Start
//
//	svc := estimate.New()
//	defer svc.Close()
//
//	img, err := svc.Generate(ctx, estimate.Input{
//	    Markdown: content,
//	    Type:     estimate.TypePNG,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.png", img, 0644)
//
// # Pipeline
//
//  1. Front-matter split and metadata organization (typed groups with
//     defaults for every missing field)
//  2. Pricing table extraction via Goldmark's GFM table parser, with
//     per-cell validation
//  3. Totals computation: per-unit service tax, subtotal, invoice-level
//     tax and fee percentages, flat discount
//  4. Placeholder substitution over the embedded invoice template
//  5. Rasterization via headless Chrome (go-rod)
//
// Use RenderHTML to stop after stage 4 and obtain the markup instead of
// an image.
//
// # Browser Requirements
//
// Image generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run.
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; the sandbox is
// disabled automatically under CI.
package estimate
