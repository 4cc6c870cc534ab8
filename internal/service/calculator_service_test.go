package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"carimport/internal/customs"
	"carimport/internal/model"
	"carimport/internal/rates"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRates struct {
	rates model.ExchangeRates
	hits  atomic.Int32
}

func (f *fakeRates) Fetch(context.Context) model.ExchangeRates {
	f.hits.Add(1)
	return f.rates
}

type fakeShipping struct {
	price model.ShippingPrice
	err   error
}

func (f *fakeShipping) Resolve(_ context.Context, city, auction, category string) (model.ShippingPrice, error) {
	if f.err != nil {
		return model.ShippingPrice{}, f.err
	}
	p := f.price
	p.City, p.Auction, p.Category = city, auction, category
	return p, nil
}

type fakeTax struct {
	result  model.TaxResult
	err     error
	calls   atomic.Int32
	lastReq customs.TaxRequest
}

func (f *fakeTax) Compute(_ context.Context, req customs.TaxRequest) (model.TaxResult, error) {
	f.calls.Add(1)
	f.lastReq = req
	return f.result, f.err
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func liveRates(eurPerUSD string) model.ExchangeRates {
	return model.ExchangeRates{
		AMDPerUSD: d("390"),
		AMDPerEUR: d("459.19"),
		EURPerUSD: d(eurPerUSD),
	}
}

func copartQuote() model.VehicleQuote {
	return model.VehicleQuote{
		BuyerType:          model.BuyerIndividual,
		VehicleCategory:    model.CategorySedan,
		PriceUSD:           d("12000"),
		AuctionHouse:       model.AuctionCopart,
		AuctionCity:        "Dallas",
		PurchaseDate:       model.NewDate(2024, time.October, 10),
		EngineType:         model.EngineGasoline,
		EngineVolumeLiters: d("2.5"),
		Insured:            true,
	}
}

type calculatorFixture struct {
	rates    *fakeRates
	shipping *fakeShipping
	tax      *fakeTax
	svc      CalculatorService
}

func newCalculatorFixture() *calculatorFixture {
	f := &calculatorFixture{
		rates: &fakeRates{rates: liveRates("1.1774")},
		shipping: &fakeShipping{price: model.ShippingPrice{
			PriceUSD: d("900"),
			Port:     model.PortHouston,
			Source:   model.ShippingSourceLive,
		}},
		tax: &fakeTax{result: model.TaxResult{
			CustomsDutyLocal:      d("2354.8"),
			VATLocal:              d("4709.6"),
			EnvironmentalTaxLocal: d("117.74"),
			TotalLocal:            d("7182.14"),
			RegimeLabel:           "standard",
		}},
	}
	f.svc = NewCalculatorService(CalculatorDeps{
		Rates:    f.rates,
		Shipping: f.shipping,
		Tax:      f.tax,
	})
	return f
}

var fullAccess = model.AccessPolicy{HasFullAccess: true}

func amount(t *testing.T, a model.Amount) string {
	t.Helper()
	v, ok := a.Value()
	require.True(t, ok, "amount is redacted")
	return v.String()
}

func TestCalculate_PrivilegedBreakdown(t *testing.T) {
	f := newCalculatorFixture()

	got, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)

	assert.Equal(t, "12000", amount(t, got.VehiclePrice))
	assert.Equal(t, "1185", amount(t, got.AuctionFees))
	assert.Equal(t, "900", amount(t, got.ShippingPrice))
	assert.Equal(t, "120", amount(t, got.InsuranceFee))
	assert.Equal(t, "2000", amount(t, got.CustomsDutyUSD))
	assert.Equal(t, "4000", amount(t, got.VATUSD))
	assert.Equal(t, "100", amount(t, got.EnvironmentalTaxUSD))
	assert.Equal(t, "450", amount(t, got.ServiceFee))
	assert.Equal(t, "20755", amount(t, got.TotalUSD))

	assert.False(t, got.Redacted)
	assert.Equal(t, "standard", got.TaxRegime)
	assert.Equal(t, model.ShippingSourceLive, got.ShippingSource)
	assert.Equal(t, "875", got.AuctionFeeDetail.BidFee.String())
	assert.Equal(t, int32(1), f.tax.calls.Load())
	assert.Equal(t, model.EngineGasoline, f.tax.lastReq.EngineType)
}

func TestCalculate_UninsuredQuoteHasZeroInsuranceTerm(t *testing.T) {
	f := newCalculatorFixture()
	q := copartQuote()
	q.Insured = false

	got, err := f.svc.Calculate(context.Background(), q, fullAccess)
	require.NoError(t, err)
	assert.Equal(t, "0", amount(t, got.InsuranceFee))
	assert.Equal(t, "20635", amount(t, got.TotalUSD))
}

func TestCalculate_ZeroInsuranceRateDisablesPremium(t *testing.T) {
	f := newCalculatorFixture()
	zero := decimal.Zero
	svc := NewCalculatorService(CalculatorDeps{
		Rates:         f.rates,
		Shipping:      f.shipping,
		Tax:           f.tax,
		InsuranceRate: &zero,
	})

	got, err := svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)
	assert.Equal(t, "0", amount(t, got.InsuranceFee))
	assert.Equal(t, "20635", amount(t, got.TotalUSD))
}

func TestCalculate_ConfiguredInsuranceRate(t *testing.T) {
	f := newCalculatorFixture()
	rate := d("0.02")
	svc := NewCalculatorService(CalculatorDeps{
		Rates:         f.rates,
		Shipping:      f.shipping,
		Tax:           f.tax,
		InsuranceRate: &rate,
	})

	got, err := svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)
	assert.Equal(t, "240", amount(t, got.InsuranceFee))
}

func TestCalculate_TotalReconcilesWithLineItems(t *testing.T) {
	f := newCalculatorFixture()
	f.rates.rates = liveRates("1")
	f.tax.result = model.TaxResult{
		CustomsDutyLocal:      d("100.4"),
		VATLocal:              d("100.4"),
		EnvironmentalTaxLocal: d("100.4"),
	}
	f.shipping.price.PriceUSD = d("650.49")

	for _, price := range []string{"0.01", "99.5", "4999.5", "7500", "12345.67", "49999.5", "150000.5"} {
		t.Run(price, func(t *testing.T) {
			q := copartQuote()
			q.PriceUSD = d(price)

			got, err := f.svc.Calculate(context.Background(), q, fullAccess)
			require.NoError(t, err)

			sum := decimal.Zero
			for _, line := range got.LineItems() {
				v, ok := line.Value()
				require.True(t, ok)
				assert.True(t, v.Equal(v.Round(0)), "line %s is not whole dollars", v)
				sum = sum.Add(v)
			}
			total, _ := got.TotalUSD.Value()
			assert.True(t, total.Equal(sum), "total %s != sum of lines %s", total, sum)
		})
	}
}

func TestCalculate_TaxLinesAreRoundedIndividually(t *testing.T) {
	f := newCalculatorFixture()
	f.rates.rates = liveRates("1")
	f.tax.result = model.TaxResult{
		CustomsDutyLocal:      d("100.4"),
		VATLocal:              d("100.4"),
		EnvironmentalTaxLocal: d("100.4"),
	}
	q := copartQuote()
	q.Insured = false

	got, err := f.svc.Calculate(context.Background(), q, fullAccess)
	require.NoError(t, err)
	assert.Equal(t, "100", amount(t, got.CustomsDutyUSD))
	assert.Equal(t, "100", amount(t, got.VATUSD))
	assert.Equal(t, "100", amount(t, got.EnvironmentalTaxUSD))
	// 12000 + 1185 + 900 + 0 + 300 = 14385, service fee 375
	assert.Equal(t, "14760", amount(t, got.TotalUSD))
}

func TestCalculate_UnprivilegedIsRedacted(t *testing.T) {
	f := newCalculatorFixture()

	got, err := f.svc.Calculate(context.Background(), copartQuote(), model.AccessPolicy{})
	require.NoError(t, err)

	assert.True(t, got.Redacted)
	assert.Equal(t, "12000", amount(t, got.VehiclePrice))
	assert.Equal(t, "1185", amount(t, got.AuctionFees))
	for _, a := range []model.Amount{
		got.ShippingPrice, got.InsuranceFee, got.CustomsDutyUSD, got.VATUSD,
		got.EnvironmentalTaxUSD, got.ServiceFee, got.TotalUSD,
	} {
		assert.True(t, a.IsRedacted())
	}
	assert.Empty(t, got.TaxRegime)
	assert.Empty(t, got.ShippingSource)
	assert.Zero(t, f.tax.calls.Load(), "customs must not be queried for unprivileged callers")

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(12000), decoded["vehicle_price"])
	assert.Equal(t, float64(1185), decoded["auction_fees"])
	for _, key := range []string{"shipping_price", "insurance_fee", "customs_duty_usd", "vat_usd", "environmental_tax_usd", "service_fee", "total_usd"} {
		assert.Equal(t, model.RedactedMarker, decoded[key], key)
	}
}

func TestCalculate_IsDeterministic(t *testing.T) {
	f := newCalculatorFixture()

	first, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)
	second, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.JSONEq(t, string(a), string(b))
}

func TestCalculate_RatesFallbackStillSucceeds(t *testing.T) {
	f := newCalculatorFixture()
	f.rates.rates = rates.Fallback(time.Now())

	got, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
	require.NoError(t, err)
	assert.True(t, got.ExchangeRates.Fallback)
	assert.Equal(t, "1.1774", got.ExchangeRates.EURPerUSD.String())
	assert.Equal(t, "2000", amount(t, got.CustomsDutyUSD))
}

func TestCalculate_ShippingUnresolvedFails(t *testing.T) {
	for _, policy := range []model.AccessPolicy{{HasFullAccess: true}, {}} {
		t.Run(fmt.Sprintf("full=%v", policy.HasFullAccess), func(t *testing.T) {
			f := newCalculatorFixture()
			f.shipping.err = fmt.Errorf("%w: city=%q", model.ErrShippingUnresolved, "Atlantis")

			got, err := f.svc.Calculate(context.Background(), copartQuote(), policy)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrShippingUnresolved))
			assert.Equal(t, model.CostBreakdown{}, got)
		})
	}
}

func TestCalculate_UnclassifiedShippingErrorIsUnresolved(t *testing.T) {
	f := newCalculatorFixture()
	f.shipping.err = errors.New("directory exploded")

	_, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
	assert.True(t, errors.Is(err, model.ErrShippingUnresolved))
}

func TestCalculate_TaxFailureFails(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"classified", fmt.Errorf("%w: unexpected status 503", model.ErrTaxServiceUnavailable)},
		{"unclassified", context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalculatorFixture()
			f.tax.err = tt.err

			got, err := f.svc.Calculate(context.Background(), copartQuote(), fullAccess)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrTaxServiceUnavailable))
			assert.Equal(t, model.CostBreakdown{}, got)
		})
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *model.VehicleQuote)
	}{
		{"zero price", func(q *model.VehicleQuote) { q.PriceUSD = decimal.Zero }},
		{"negative price", func(q *model.VehicleQuote) { q.PriceUSD = d("-1") }},
		{"missing date", func(q *model.VehicleQuote) { q.PurchaseDate = model.Date{} }},
		{"missing volume", func(q *model.VehicleQuote) { q.EngineVolumeLiters = decimal.Zero }},
		{"hybrid without power", func(q *model.VehicleQuote) { q.EngineType = model.EngineHybrid }},
		{"non positive power", func(q *model.VehicleQuote) { p := decimal.Zero; q.EnginePowerKW = &p }},
		{"unknown buyer type", func(q *model.VehicleQuote) { q.BuyerType = "company" }},
		{"unknown auction", func(q *model.VehicleQuote) { q.AuctionHouse = "adesa" }},
		{"unknown category", func(q *model.VehicleQuote) { q.VehicleCategory = "bus" }},
		{"missing city", func(q *model.VehicleQuote) { q.AuctionCity = "" }},
		{"unknown engine", func(q *model.VehicleQuote) { q.EngineType = "steam" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCalculatorFixture()
			q := copartQuote()
			tt.mutate(&q)

			_, err := f.svc.Calculate(context.Background(), q, fullAccess)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidQuoteInput), "got %v", err)
			assert.Zero(t, f.rates.hits.Load())
			assert.Zero(t, f.tax.calls.Load())
		})
	}
}

func TestCalculate_ElectricNeedsNoVolume(t *testing.T) {
	f := newCalculatorFixture()
	q := copartQuote()
	q.EngineType = model.EngineElectric
	q.EngineVolumeLiters = decimal.Zero

	_, err := f.svc.Calculate(context.Background(), q, fullAccess)
	require.NoError(t, err)
}

func TestCalculate_UnscheduledAuctionHasNoFees(t *testing.T) {
	f := newCalculatorFixture()
	q := copartQuote()
	q.AuctionHouse = model.AuctionManheim

	got, err := f.svc.Calculate(context.Background(), q, model.AccessPolicy{})
	require.NoError(t, err)
	assert.Equal(t, "0", amount(t, got.AuctionFees))
}
