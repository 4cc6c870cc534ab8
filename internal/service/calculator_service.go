package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carimport/internal/customs"
	"carimport/internal/model"
	"carimport/internal/pricing"
	"carimport/internal/rates"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultInsuranceRate is the cargo insurance premium as a share of the price.
var DefaultInsuranceRate = decimal.RequireFromString("0.01")

// --- Collaborators ---

type ShippingResolver interface {
	Resolve(ctx context.Context, city, auctionHouse, category string) (model.ShippingPrice, error)
}

// --- Interface ---

type CalculatorService interface {
	Calculate(ctx context.Context, quote model.VehicleQuote, policy model.AccessPolicy) (model.CostBreakdown, error)
}

// CalculatorDeps wires the calculator. Rates, Shipping and Tax are required.
type CalculatorDeps struct {
	Rates         rates.Fetcher
	Shipping      ShippingResolver
	Tax           customs.Calculator
	// InsuranceRate nil means DefaultInsuranceRate; zero disables the premium.
	InsuranceRate *decimal.Decimal
	Logger        *zap.Logger
}

type calculatorService struct {
	rates         rates.Fetcher
	shipping      ShippingResolver
	tax           customs.Calculator
	insuranceRate decimal.Decimal
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewCalculatorService(deps CalculatorDeps) CalculatorService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	insuranceRate := DefaultInsuranceRate
	if deps.InsuranceRate != nil {
		insuranceRate = *deps.InsuranceRate
	}
	return &calculatorService{
		rates:         deps.Rates,
		shipping:      deps.Shipping,
		tax:           deps.Tax,
		insuranceRate: insuranceRate,
		validate:      validator.New(),
		logger:        deps.Logger,
	}
}

// --- Implementation ---

// Calculate prices a quote. Rates never fail the calculation; an unresolved
// shipping price or a customs failure always does.
func (s *calculatorService) Calculate(ctx context.Context, quote model.VehicleQuote, policy model.AccessPolicy) (model.CostBreakdown, error) {
	started := time.Now()
	logger := s.logger.With(
		zap.String("auction", quote.AuctionHouse),
		zap.String("city", quote.AuctionCity),
		zap.Bool("privileged", policy.HasFullAccess),
	)

	breakdown, err := s.calculate(ctx, quote, policy)
	if err != nil {
		logger.Warn("cost calculation failed",
			zap.String("code", model.ErrorCode(err)),
			zap.Error(err),
			zap.Duration("elapsed", time.Since(started)))
		return model.CostBreakdown{}, err
	}

	logger.Info("cost calculated",
		zap.String("total_usd", breakdown.TotalUSD.String()),
		zap.Bool("rates_fallback", breakdown.ExchangeRates.Fallback),
		zap.Duration("elapsed", time.Since(started)))
	return breakdown, nil
}

func (s *calculatorService) calculate(ctx context.Context, quote model.VehicleQuote, policy model.AccessPolicy) (model.CostBreakdown, error) {
	if err := s.validateQuote(quote); err != nil {
		return model.CostBreakdown{}, err
	}

	fees, err := pricing.ComputeAuctionFees(quote.AuctionHouse, quote.PriceUSD, quote.UseLiveBid)
	if err != nil {
		return model.CostBreakdown{}, err
	}

	var (
		exchange model.ExchangeRates
		shipping model.ShippingPrice
		tax      model.TaxResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exchange = s.rates.Fetch(gctx)
		return nil
	})
	g.Go(func() error {
		price, err := s.shipping.Resolve(gctx, quote.AuctionCity, quote.AuctionHouse, quote.VehicleCategory)
		if err != nil {
			return asKind(err, model.ErrShippingUnresolved, "resolve shipping")
		}
		shipping = price
		return nil
	})
	if policy.HasFullAccess {
		g.Go(func() error {
			result, err := s.tax.Compute(gctx, customs.TaxRequestFromQuote(quote))
			if err != nil {
				return asKind(err, model.ErrTaxServiceUnavailable, "compute customs")
			}
			tax = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.CostBreakdown{}, err
	}

	return Assemble(quote, policy, fees, exchange, shipping, tax, s.insuranceRate), nil
}

// asKind keeps err's classification when it already has one and otherwise
// files it under kind.
func asKind(err error, kind error, op string) error {
	if errors.Is(err, model.ErrInvalidQuoteInput) ||
		errors.Is(err, model.ErrShippingUnresolved) ||
		errors.Is(err, model.ErrTaxServiceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", kind, op, err)
}

// Assemble builds the breakdown from already-resolved inputs. Every line is
// rounded to whole dollars before it is added, so the total always equals
// the sum of the displayed lines.
func Assemble(
	quote model.VehicleQuote,
	policy model.AccessPolicy,
	fees model.AuctionFeeBreakdown,
	exchange model.ExchangeRates,
	shipping model.ShippingPrice,
	tax model.TaxResult,
	insuranceRate decimal.Decimal,
) model.CostBreakdown {
	b := model.CostBreakdown{
		VehiclePrice:     model.NewAmount(quote.PriceUSD),
		AuctionFees:      model.NewAmount(fees.TotalFees),
		AuctionFeeDetail: fees,
		ExchangeRates:    exchange,
	}

	if !policy.HasFullAccess {
		b.ShippingPrice = model.Redacted()
		b.InsuranceFee = model.Redacted()
		b.CustomsDutyUSD = model.Redacted()
		b.VATUSD = model.Redacted()
		b.EnvironmentalTaxUSD = model.Redacted()
		b.ServiceFee = model.Redacted()
		b.TotalUSD = model.Redacted()
		b.Redacted = true
		return b
	}

	eurPerUSD := exchange.EURPerUSD
	if !eurPerUSD.IsPositive() {
		eurPerUSD = rates.FallbackEURPerUSD
	}

	insurance := decimal.Zero
	if quote.Insured {
		insurance = quote.PriceUSD.Mul(insuranceRate)
	}

	b.ShippingPrice = model.NewAmount(shipping.PriceUSD)
	b.InsuranceFee = model.NewAmount(insurance)
	b.CustomsDutyUSD = model.NewAmount(tax.CustomsDutyLocal.Div(eurPerUSD))
	b.VATUSD = model.NewAmount(tax.VATLocal.Div(eurPerUSD))
	b.EnvironmentalTaxUSD = model.NewAmount(tax.EnvironmentalTaxLocal.Div(eurPerUSD))
	b.TaxRegime = tax.RegimeLabel
	b.ShippingSource = shipping.Source

	subtotal := sumAmounts(
		b.VehiclePrice,
		b.AuctionFees,
		b.ShippingPrice,
		b.InsuranceFee,
		b.CustomsDutyUSD,
		b.VATUSD,
		b.EnvironmentalTaxUSD,
	)
	b.ServiceFee = model.NewAmount(pricing.ComputeServiceFee(subtotal))
	b.TotalUSD = model.NewAmount(sumAmounts(model.NewAmount(subtotal), b.ServiceFee))
	return b
}

func sumAmounts(amounts ...model.Amount) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		if v, ok := a.Value(); ok {
			sum = sum.Add(v)
		}
	}
	return sum
}

func (s *calculatorService) validateQuote(q model.VehicleQuote) error {
	if err := s.validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" "+fe.Tag())
			}
			return fmt.Errorf("%w: %s", model.ErrInvalidQuoteInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidQuoteInput, err)
	}

	if !q.PriceUSD.IsPositive() {
		return fmt.Errorf("%w: price must be positive", model.ErrInvalidQuoteInput)
	}
	if q.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", model.ErrInvalidQuoteInput)
	}
	if q.EngineType != model.EngineElectric && !q.EngineVolumeLiters.IsPositive() {
		return fmt.Errorf("%w: engine volume is required for %s engines", model.ErrInvalidQuoteInput, q.EngineType)
	}
	if q.EnginePowerKW != nil && !q.EnginePowerKW.IsPositive() {
		return fmt.Errorf("%w: engine power must be positive", model.ErrInvalidQuoteInput)
	}
	if q.EngineType == model.EngineHybrid && q.EnginePowerKW == nil {
		return fmt.Errorf("%w: engine power is required for hybrid engines", model.ErrInvalidQuoteInput)
	}
	return nil
}
