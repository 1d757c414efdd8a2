package estimate

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func TestPriceLineItems(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		{Item: "Design", Price: 100, Qty: 2},
		{Item: "Copy", Price: 49.50, Qty: 3},
	}
	params := Parameters{Currency: "usd", ServiceTax: 20}

	priced, err := priceLineItems(items, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, p := range priced {
		wantPriceWithTax := items[i].Price + items[i].Price*20/100
		wantTotalWithTax := float64(items[i].Qty) * wantPriceWithTax

		if !almostEqual(p.Total, float64(items[i].Qty)*items[i].Price) {
			t.Errorf("item %d Total = %v, want %v", i, p.Total, float64(items[i].Qty)*items[i].Price)
		}
		if !almostEqual(p.PriceWithTax, wantPriceWithTax) {
			t.Errorf("item %d PriceWithTax = %v, want %v", i, p.PriceWithTax, wantPriceWithTax)
		}
		if !almostEqual(p.TotalWithTax, wantTotalWithTax) {
			t.Errorf("item %d TotalWithTax = %v, want %v", i, p.TotalWithTax, wantTotalWithTax)
		}
	}

	if priced[0].PriceWithTaxHTML != "$120.00" {
		t.Errorf("PriceWithTaxHTML = %q, want $120.00", priced[0].PriceWithTaxHTML)
	}
	if priced[0].TotalWithTaxHTML != "$240.00" {
		t.Errorf("TotalWithTaxHTML = %q, want $240.00", priced[0].TotalWithTaxHTML)
	}
}

func TestPriceLineItemsServiceTaxResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		serviceTax float64
		wantPrice  float64
	}{
		{name: "positive rate applies", serviceTax: 20, wantPrice: 120},
		{name: "zero rate leaves price", serviceTax: 0, wantPrice: 100},
		{name: "negative rate treated as zero", serviceTax: -10, wantPrice: 100},
		{name: "NaN rate treated as zero", serviceTax: math.NaN(), wantPrice: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			priced, err := priceLineItems(
				[]LineItem{{Item: "A", Price: 100, Qty: 1}},
				Parameters{Currency: "usd", ServiceTax: tt.serviceTax},
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(priced[0].PriceWithTax, tt.wantPrice) {
				t.Errorf("PriceWithTax = %v, want %v", priced[0].PriceWithTax, tt.wantPrice)
			}
		})
	}
}

func TestCalculateTotals(t *testing.T) {
	t.Parallel()

	params := Parameters{Currency: "usd", Tax: 15, OtherFee: 4, Discount: 30}
	priced := []PricedLineItem{
		{TotalWithTax: 120},
		{TotalWithTax: 240},
		{TotalWithTax: 40},
	}

	totals, err := calculateTotals(priced, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSubtotal := 400.0
	wantTaxAmt := wantSubtotal * 15 / 100
	wantFeeAmt := wantSubtotal * 4 / 100
	wantTotal := wantSubtotal + wantTaxAmt + wantFeeAmt - 30

	if !almostEqual(totals.Subtotal, wantSubtotal) {
		t.Errorf("Subtotal = %v, want %v", totals.Subtotal, wantSubtotal)
	}
	if !almostEqual(totals.TaxAmt, wantTaxAmt) {
		t.Errorf("TaxAmt = %v, want %v", totals.TaxAmt, wantTaxAmt)
	}
	if !almostEqual(totals.OtherFeeAmt, wantFeeAmt) {
		t.Errorf("OtherFeeAmt = %v, want %v", totals.OtherFeeAmt, wantFeeAmt)
	}
	if !almostEqual(totals.Total, wantTotal) {
		t.Errorf("Total = %v, want %v", totals.Total, wantTotal)
	}
	if totals.SubtotalHTML != "$400.00" {
		t.Errorf("SubtotalHTML = %q, want $400.00", totals.SubtotalHTML)
	}
}

func TestCalculateTotalsDisplayRounding(t *testing.T) {
	t.Parallel()

	// Subtotal 333.33 with 10% tax: 366.663 displays as the rounded 367,
	// while the subtotal itself keeps 2 decimals.
	totals, err := calculateTotals(
		[]PricedLineItem{{TotalWithTax: 333.33}},
		Parameters{Currency: "usd", Tax: 10},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals.TotalHTML != "$367.00" {
		t.Errorf("TotalHTML = %q, want $367.00", totals.TotalHTML)
	}
	if totals.SubtotalHTML != "$333.33" {
		t.Errorf("SubtotalHTML = %q, want $333.33", totals.SubtotalHTML)
	}
	if almostEqual(totals.Total, 367) {
		t.Error("Total must keep the exact value; only the display is rounded")
	}
}

func TestCalculateTotalsRateResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Parameters
		want   float64
	}{
		{name: "all zero", params: Parameters{Currency: "usd"}, want: 100},
		{name: "negative rates ignored", params: Parameters{Currency: "usd", Tax: -5, OtherFee: -1, Discount: -20}, want: 100},
		{name: "NaN rates ignored", params: Parameters{Currency: "usd", Tax: math.NaN()}, want: 100},
		{name: "discount subtracted flat", params: Parameters{Currency: "usd", Discount: 25}, want: 75},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals, err := calculateTotals([]PricedLineItem{{TotalWithTax: 100}}, tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(totals.Total, tt.want) {
				t.Errorf("Total = %v, want %v", totals.Total, tt.want)
			}
		})
	}
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	t.Parallel()

	totals, err := calculateTotals(nil, Parameters{Currency: "usd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 0 || totals.Total != 0 {
		t.Errorf("empty items: Subtotal = %v, Total = %v, want 0, 0", totals.Subtotal, totals.Total)
	}
	if totals.TotalHTML != "$0.00" {
		t.Errorf("TotalHTML = %q, want $0.00", totals.TotalHTML)
	}
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	t.Parallel()

	params := Parameters{Currency: "gbp", Tax: 15, OtherFee: 4, Discount: 30}
	priced := []PricedLineItem{{TotalWithTax: 120.5}, {TotalWithTax: 99.99}}

	first, err := calculateTotals(priced, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := calculateTotals(priced, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("totals differ across calls: %+v vs %+v", first, second)
	}
}

func TestCalculateTotalsSummationOrder(t *testing.T) {
	t.Parallel()

	// Subtotal must be the left-to-right floating point sum, not a
	// reordered or compensated one.
	priced := []PricedLineItem{
		{TotalWithTax: 0.1},
		{TotalWithTax: 0.2},
		{TotalWithTax: 0.3},
	}

	totals, err := calculateTotals(priced, Parameters{Currency: "usd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 0.1 + 0.2
	want += 0.3
	if totals.Subtotal != want {
		t.Errorf("Subtotal = %v, want exact left-to-right sum %v", totals.Subtotal, want)
	}
}
