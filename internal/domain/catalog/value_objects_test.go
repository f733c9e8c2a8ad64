//go:build unit

package catalog_test

import (
	"testing"

	"spa-promotions/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTierPrices(t *testing.T) {
	t.Run("percent derives the promo price", func(t *testing.T) {
		tp, err := catalog.NewTierPrices(500_000, 20)
		require.NoError(t, err)

		assert.Equal(t, int64(500_000), tp.Original())
		assert.Equal(t, float64(20), tp.DiscountPercent())
		assert.Equal(t, int64(400_000), tp.Promo())
	})

	t.Run("zero percent leaves promo empty", func(t *testing.T) {
		tp, err := catalog.NewTierPrices(500_000, 0)
		require.NoError(t, err)
		assert.Zero(t, tp.Promo())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := catalog.NewTierPrices(-1, 0)
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestTierPricesRederivation(t *testing.T) {
	base, err := catalog.NewTierPrices(500_000, 20)
	require.NoError(t, err)

	t.Run("changing the original re-derives promo", func(t *testing.T) {
		tp := base.WithOriginal(1_000_000)
		assert.Equal(t, int64(800_000), tp.Promo())
	})

	t.Run("changing the percent re-derives promo", func(t *testing.T) {
		tp := base.WithDiscountPercent(15)
		assert.Equal(t, int64(425_000), tp.Promo())
	})

	t.Run("manual promo edit wins until the next derivation input changes", func(t *testing.T) {
		tp := base.WithPromo(350_000)
		assert.Equal(t, int64(350_000), tp.Promo())

		tp = tp.WithOriginal(600_000)
		assert.Equal(t, int64(480_000), tp.Promo())
	})

	t.Run("invalid percent is a no-op on promo", func(t *testing.T) {
		tp := base.WithDiscountPercent(150)
		assert.Equal(t, int64(400_000), tp.Promo())
	})

	t.Run("package prices are independent of the percent", func(t *testing.T) {
		tp := base.WithPackages(2_000_000, 3_500_000, 0, 0, 0)
		tp = tp.WithDiscountPercent(50)

		assert.Equal(t, int64(2_000_000), tp.FiveForFive())
		assert.Equal(t, int64(3_500_000), tp.TenForFifteen())
	})
}

func TestTierPrice(t *testing.T) {
	tp := catalog.ReconstructTierPrices(500_000, 20, 400_000, 2_000_000, 3_500_000, 0, 0, 0)

	assert.Equal(t, int64(400_000), tp.TierPrice(catalog.TierPromo))
	assert.Equal(t, int64(2_000_000), tp.TierPrice(catalog.TierPackage5))
	assert.Equal(t, int64(3_500_000), tp.TierPrice(catalog.TierPackage15))
	assert.Zero(t, tp.TierPrice(catalog.Tier("bogus")))
}
