package estimate

import (
	"fmt"
	"math"

	"github.com/vijayhardaha/estimate-generator-cli/internal/currency"
	"github.com/vijayhardaha/estimate-generator-cli/internal/numutil"
)

// priceLineItems derives per-row amounts and formatted variants.
// The service tax is a per-unit rate: it raises the displayed unit
// price before quantity multiplication. It is distinct from the
// invoice-level tax, which applies once to the aggregated subtotal.
func priceLineItems(items []LineItem, params Parameters) ([]PricedLineItem, error) {
	taxRate := params.ServiceTax
	if math.IsNaN(taxRate) || math.IsInf(taxRate, 0) || taxRate <= 0 {
		taxRate = 0
	}

	priced := make([]PricedLineItem, 0, len(items))
	for _, item := range items {
		unitTax, err := numutil.Percentage(item.Price, taxRate)
		if err != nil {
			return nil, fmt.Errorf("pricing %q: %w", item.Item, err)
		}

		p := PricedLineItem{LineItem: item}
		p.Total = float64(item.Qty) * item.Price
		p.PriceWithTax = item.Price + unitTax
		p.TotalWithTax = float64(item.Qty) * p.PriceWithTax

		p.PriceHTML = currency.Format(p.Price, params.Currency)
		p.TotalHTML = currency.Format(p.Total, params.Currency)
		p.PriceWithTaxHTML = currency.Format(p.PriceWithTax, params.Currency)
		p.TotalWithTaxHTML = currency.Format(p.TotalWithTax, params.Currency)

		priced = append(priced, p)
	}

	return priced, nil
}

// calculateTotals aggregates the invoice-level figures.
// Subtotal sums TotalWithTax left to right; tax and fee are
// percentage-of-subtotal surcharges; discount is a flat amount.
// Rates resolve to 0 when non-positive or non-finite ("no such
// charge"). The displayed grand total is rounded to the nearest whole
// amount; every other displayed figure keeps 2 decimals.
func calculateTotals(items []PricedLineItem, params Parameters) (Totals, error) {
	t := Totals{
		Tax:      resolveRate(params.Tax),
		OtherFee: resolveRate(params.OtherFee),
		Discount: resolveRate(params.Discount),
	}

	for _, item := range items {
		t.Subtotal += item.TotalWithTax
	}

	var err error
	if t.TaxAmt, err = numutil.Percentage(t.Subtotal, t.Tax); err != nil {
		return Totals{}, fmt.Errorf("calculating tax: %w", err)
	}
	if t.OtherFeeAmt, err = numutil.Percentage(t.Subtotal, t.OtherFee); err != nil {
		return Totals{}, fmt.Errorf("calculating fee: %w", err)
	}

	t.Total = t.Subtotal + t.TaxAmt + t.OtherFeeAmt - t.Discount

	t.SubtotalHTML = currency.Format(t.Subtotal, params.Currency)
	t.TaxAmtHTML = currency.Format(t.TaxAmt, params.Currency)
	t.OtherFeeAmtHTML = currency.Format(t.OtherFeeAmt, params.Currency)
	t.DiscountHTML = currency.Format(t.Discount, params.Currency)
	t.TotalHTML = currency.Format(math.Round(t.Total), params.Currency)

	return t, nil
}

// resolveRate treats non-positive and non-finite configured values as
// "no such charge".
func resolveRate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
