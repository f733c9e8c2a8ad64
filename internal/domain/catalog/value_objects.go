package catalog

import (
	"errors"

	"spa-promotions/internal/domain/pricing"
)

var (
	ErrInvalidKind   = errors.New("invalid service kind")
	ErrInvalidTier   = errors.New("invalid price tier")
	ErrEmptyName     = errors.New("service name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// TierPrices carries the full price list of a catalog service: the original
// list price, the percentage-derived promo price, and the named package
// tiers sold at the front desk. A tier left at zero means the service is
// not sold under that package.
type TierPrices struct {
	original        int64
	discountPercent float64
	promo           int64
	fiveForFive     int64
	tenForFifteen   int64
	session5        int64
	session10       int64
	session20       int64
}

func NewTierPrices(original int64, discountPercent float64) (TierPrices, error) {
	if original < 0 {
		return TierPrices{}, ErrNegativePrice
	}
	tp := TierPrices{original: original}
	tp = tp.WithDiscountPercent(discountPercent)
	return tp, nil
}

func ReconstructTierPrices(original int64, discountPercent float64, promo, fiveForFive, tenForFifteen, session5, session10, session20 int64) TierPrices {
	return TierPrices{
		original:        original,
		discountPercent: discountPercent,
		promo:           promo,
		fiveForFive:     fiveForFive,
		tenForFifteen:   tenForFifteen,
		session5:        session5,
		session10:       session10,
		session20:       session20,
	}
}

func (tp TierPrices) Original() int64          { return tp.original }
func (tp TierPrices) DiscountPercent() float64 { return tp.discountPercent }
func (tp TierPrices) Promo() int64             { return tp.promo }
func (tp TierPrices) FiveForFive() int64       { return tp.fiveForFive }
func (tp TierPrices) TenForFifteen() int64     { return tp.tenForFifteen }
func (tp TierPrices) Session5() int64          { return tp.session5 }
func (tp TierPrices) Session10() int64         { return tp.session10 }
func (tp TierPrices) Session20() int64         { return tp.session20 }

// WithOriginal changes the list price and re-derives the promo price from
// the current discount percent. Any earlier manual promo edit is overwritten;
// re-derivation is triggered only by changes to the original price or the
// percent itself.
func (tp TierPrices) WithOriginal(original int64) TierPrices {
	tp.original = original
	if pricing.ValidPercent(tp.discountPercent) && tp.discountPercent > 0 {
		tp.promo = pricing.ApplyPercentDiscount(original, tp.discountPercent)
	}
	return tp
}

// WithDiscountPercent changes the percent and re-derives the promo price.
func (tp TierPrices) WithDiscountPercent(percent float64) TierPrices {
	tp.discountPercent = percent
	if pricing.ValidPercent(percent) && percent > 0 {
		tp.promo = pricing.ApplyPercentDiscount(tp.original, percent)
	}
	return tp
}

// WithPromo overrides the promo price by hand. Last write wins: the value
// sticks until the original price or percent changes again.
func (tp TierPrices) WithPromo(promo int64) TierPrices {
	tp.promo = promo
	return tp
}

func (tp TierPrices) WithPackages(fiveForFive, tenForFifteen, session5, session10, session20 int64) TierPrices {
	tp.fiveForFive = fiveForFive
	tp.tenForFifteen = tenForFifteen
	tp.session5 = session5
	tp.session10 = session10
	tp.session20 = session20
	return tp
}

// TierPrice returns the price stored under the named tier.
func (tp TierPrices) TierPrice(tier Tier) int64 {
	switch tier {
	case TierPromo:
		return tp.promo
	case TierPackage5:
		return tp.fiveForFive
	case TierPackage15:
		return tp.tenForFifteen
	default:
		return 0
	}
}
