//go:build unit

package commands_test

import (
	"context"
	"testing"

	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/shared"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type composerFixture struct {
	services *memstore.Collection[shared.ServiceRecord]
	commands commands.ComposerCommands
}

func newComposerFixture(t *testing.T) *composerFixture {
	t.Helper()
	f := &composerFixture{services: memstore.NewCollection[shared.ServiceRecord]()}
	f.commands = commands.NewComposerCommands(f.services)
	return f
}

func (f *composerFixture) seed(t *testing.T, mutate func(*builder.ServiceBuilder)) shared.ServiceRecord {
	t.Helper()
	b := builder.NewServiceBuilder()
	if mutate != nil {
		mutate(b)
	}
	rec, err := b.BuildRecord()
	require.NoError(t, err)
	require.NoError(t, f.services.Create(context.Background(), rec))
	return rec
}

func TestComposeToggle(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(t)
	svc := f.seed(t, nil)

	result, err := f.commands.Compose(ctx, commands.ComposeRequest{
		Op:        commands.OpToggleService,
		ServiceID: svc.ID,
	}, salesActor)
	require.NoError(t, err)

	require.Len(t, result.Services, 1)
	assert.Equal(t, svc.Name, result.Services[0].Name)
	assert.Equal(t, svc.PriceOriginal, result.Services[0].FullPrice)
	assert.Contains(t, result.ConsultationText, svc.Name)

	// Toggling again with the returned state removes the line.
	result, err = f.commands.Compose(ctx, commands.ComposeRequest{
		Services:         result.Services,
		ConsultationMode: result.ConsultationMode,
		ConsultationText: result.ConsultationText,
		Op:               commands.OpToggleService,
		ServiceID:        svc.ID,
	}, salesActor)
	require.NoError(t, err)
	assert.Empty(t, result.Services)
}

func TestComposeBulkDiscount(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(t)

	lines := []promotion.PromotionService{
		{LineID: "l1", ServiceID: "s1", Name: "Massage", FullPrice: 500_000, DiscountPrice: 500_000},
		{LineID: "l2", ServiceID: "s2", Name: "Facial", FullPrice: 200_000, DiscountPrice: 200_000},
	}

	result, err := f.commands.Compose(ctx, commands.ComposeRequest{
		Services:        lines,
		Op:              commands.OpBulkDiscount,
		SelectedLineIDs: []string{"l1"},
		Percent:         15,
	}, salesActor)
	require.NoError(t, err)

	assert.Equal(t, int64(425_000), result.Services[0].DiscountPrice)
	assert.Equal(t, int64(200_000), result.Services[1].DiscountPrice)
}

func TestComposeApplyTier(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(t)
	svc := f.seed(t, nil) // promo tier 400_000

	result, err := f.commands.Compose(ctx, commands.ComposeRequest{
		Services: []promotion.PromotionService{
			{LineID: "l1", ServiceID: svc.ID, Name: svc.Name, FullPrice: svc.PriceOriginal, DiscountPrice: svc.PriceOriginal},
		},
		Op:              commands.OpApplyTier,
		SelectedLineIDs: []string{"l1"},
		Tier:            "promo",
	}, salesActor)
	require.NoError(t, err)

	assert.Equal(t, int64(400_000), result.Services[0].DiscountPrice)
}

func TestComposeMergeCombo(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(t)

	lines := []promotion.PromotionService{
		{LineID: "l1", ServiceID: "s1", Name: "Facial", FullPrice: 300_000, DiscountPrice: 250_000},
		{LineID: "l2", ServiceID: "s2", Name: "Sauna", FullPrice: 200_000, DiscountPrice: 150_000},
	}

	result, err := f.commands.Compose(ctx, commands.ComposeRequest{
		Services:        lines,
		Op:              commands.OpMergeCombo,
		SelectedLineIDs: []string{"l1", "l2"},
	}, salesActor)
	require.NoError(t, err)

	require.Len(t, result.Services, 1)
	combo := result.Services[0]
	assert.True(t, combo.IsCombo)
	assert.Equal(t, "Facial + Sauna", combo.Name)
	assert.Equal(t, int64(500_000), combo.FullPrice)
	assert.Equal(t, int64(500_000), combo.DiscountPrice)

	// Merging a single line fails.
	_, err = f.commands.Compose(ctx, commands.ComposeRequest{
		Services:        lines,
		Op:              commands.OpMergeCombo,
		SelectedLineIDs: []string{"l1"},
	}, salesActor)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
}

func TestComposeConsultation(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(t)

	lines := []promotion.PromotionService{
		{LineID: "l1", ServiceID: "s1", Name: "Facial", FullPrice: 300_000, DiscountPrice: 250_000, ConsultationNote: "Cleanse first"},
	}

	result, err := f.commands.Compose(ctx, commands.ComposeRequest{
		Services: lines,
		Op:       commands.OpOverrideConsult,
		Text:     "Call the spa to book a skin assessment.",
	}, salesActor)
	require.NoError(t, err)
	assert.Equal(t, promotion.ConsultationOverridden, result.ConsultationMode)
	assert.Equal(t, "Call the spa to book a skin assessment.", result.ConsultationText)

	// Reset drops back to the generated aggregate.
	result, err = f.commands.Compose(ctx, commands.ComposeRequest{
		Services:         result.Services,
		ConsultationMode: result.ConsultationMode,
		ConsultationText: result.ConsultationText,
		Op:               commands.OpResetConsult,
	}, salesActor)
	require.NoError(t, err)
	assert.Equal(t, promotion.ConsultationGenerated, result.ConsultationMode)
	assert.Equal(t, "Facial\nCleanse first", result.ConsultationText)
}

func TestComposeRejectsUnknownOp(t *testing.T) {
	f := newComposerFixture(t)

	_, err := f.commands.Compose(context.Background(), commands.ComposeRequest{Op: "sparkle"}, salesActor)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)
}
