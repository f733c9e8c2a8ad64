//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/domain/user"
	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/shared"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	salesActor      = policy.Actor{ID: "sales-1", Role: user.RoleSales}
	otherSales      = policy.Actor{ID: "sales-2", Role: user.RoleSales}
	marketingActor  = policy.Actor{ID: "marketing-1", Role: user.RoleMarketing}
	managementActor = policy.Actor{ID: "management-1", Role: user.RoleManagement}
	receptionActor  = policy.Actor{ID: "reception-1", Role: user.RoleReception}
)

type promotionFixture struct {
	promotions *memstore.Collection[shared.PromotionRecord]
	services   *memstore.Collection[shared.ServiceRecord]
	clock      *clock.MockClock
	commands   commands.PromotionCommands
}

func newPromotionFixture(t *testing.T) *promotionFixture {
	t.Helper()
	f := &promotionFixture{
		promotions: memstore.NewCollection[shared.PromotionRecord](),
		services:   memstore.NewCollection[shared.ServiceRecord](),
		clock:      clock.NewMockClock(time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewPromotionCommands(f.promotions, f.services, f.clock)
	return f
}

func (f *promotionFixture) seedService(t *testing.T) shared.ServiceRecord {
	t.Helper()
	rec, err := builder.NewServiceBuilder().BuildRecord()
	require.NoError(t, err)
	require.NoError(t, f.services.Create(context.Background(), rec))
	return rec
}

func proposeRequest(lines ...promotion.PromotionService) commands.ProposeRequest {
	return commands.ProposeRequest{
		Name:      "Winter Wellness",
		StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Services:  lines,
	}
}

func TestPropose(t *testing.T) {
	ctx := context.Background()

	t.Run("opens at pending design with frozen catalog prices", func(t *testing.T) {
		f := newPromotionFixture(t)
		svc := f.seedService(t)

		rec, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{
			ServiceID:     svc.ID,
			DiscountPrice: 400_000,
		}), salesActor)
		require.NoError(t, err)

		assert.Equal(t, promotion.StatusPendingDesign.String(), rec.Status)
		assert.Equal(t, salesActor.ID, rec.ProposerID)
		require.Len(t, rec.Services, 1)
		assert.Equal(t, svc.Name, rec.Services[0].Name)
		assert.Equal(t, svc.PriceOriginal, rec.Services[0].FullPrice)
		assert.Equal(t, int64(400_000), rec.Services[0].DiscountPrice)
		assert.NotEmpty(t, rec.Services[0].LineID)
		assert.Equal(t, f.clock.Now(), rec.CreatedAt)

		stored, err := f.promotions.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.Name, stored.Name)
	})

	t.Run("an explicit zero discount price survives the freeze", func(t *testing.T) {
		f := newPromotionFixture(t)
		svc := f.seedService(t)

		rec, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{
			ServiceID:     svc.ID,
			DiscountPrice: 0,
		}), salesActor)
		require.NoError(t, err)

		require.Len(t, rec.Services, 1)
		assert.Equal(t, svc.PriceOriginal, rec.Services[0].FullPrice)
		assert.Equal(t, int64(0), rec.Services[0].DiscountPrice)
	})

	t.Run("an unset discount starts at the frozen full price", func(t *testing.T) {
		f := newPromotionFixture(t)
		svc := f.seedService(t)

		rec, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{
			ServiceID:     svc.ID,
			DiscountPrice: commands.DiscountUnset,
		}), salesActor)
		require.NoError(t, err)

		require.Len(t, rec.Services, 1)
		assert.Equal(t, svc.PriceOriginal, rec.Services[0].DiscountPrice)
	})

	t.Run("empty services is an invalid operation", func(t *testing.T) {
		f := newPromotionFixture(t)

		_, err := f.commands.Propose(ctx, proposeRequest(), salesActor)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("unknown catalog service is an invalid operation", func(t *testing.T) {
		f := newPromotionFixture(t)

		_, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{ServiceID: "ghost"}), salesActor)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("marketing and reception may not propose", func(t *testing.T) {
		f := newPromotionFixture(t)
		svc := f.seedService(t)
		line := promotion.PromotionService{ServiceID: svc.ID, DiscountPrice: 400_000}

		for _, a := range []policy.Actor{marketingActor, receptionActor} {
			_, err := f.commands.Propose(ctx, proposeRequest(line), a)
			assert.ErrorIs(t, err, errs.ErrForbidden, a.Role)
		}
	})
}

func TestApprovalWorkflow(t *testing.T) {
	ctx := context.Background()

	propose := func(t *testing.T, f *promotionFixture) *shared.PromotionRecord {
		t.Helper()
		svc := f.seedService(t)
		rec, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{
			ServiceID:     svc.ID,
			DiscountPrice: 400_000,
		}), salesActor)
		require.NoError(t, err)
		return rec
	}

	fields := promotion.MarketingFields{MarketingNotes: "banner ready", DesignURL: "https://example.com/d.png"}

	t.Run("full approval path", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		rec, err := f.commands.SubmitForApproval(ctx, rec.ID, fields, marketingActor)
		require.NoError(t, err)
		assert.Equal(t, promotion.StatusPendingApproval.String(), rec.Status)
		assert.Equal(t, "banner ready", rec.MarketingNotes)

		rec, err = f.commands.ResolveApproval(ctx, rec.ID, true, "approved for december", managementActor)
		require.NoError(t, err)
		assert.Equal(t, promotion.StatusApproved.String(), rec.Status)
		assert.Equal(t, "approved for december", rec.ManagementNotes)
	})

	t.Run("rejection path", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.SubmitForApproval(ctx, rec.ID, fields, marketingActor)
		require.NoError(t, err)

		final, err := f.commands.ResolveApproval(ctx, rec.ID, false, "margins too thin", managementActor)
		require.NoError(t, err)
		assert.Equal(t, promotion.StatusRejected.String(), final.Status)
	})

	t.Run("only marketing submits", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.SubmitForApproval(ctx, rec.ID, fields, salesActor)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("double submit is an invalid transition", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.SubmitForApproval(ctx, rec.ID, fields, marketingActor)
		require.NoError(t, err)

		_, err = f.commands.SubmitForApproval(ctx, rec.ID, fields, marketingActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("double resolve is an invalid transition", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.SubmitForApproval(ctx, rec.ID, fields, marketingActor)
		require.NoError(t, err)
		_, err = f.commands.ResolveApproval(ctx, rec.ID, true, "", managementActor)
		require.NoError(t, err)

		_, err = f.commands.ResolveApproval(ctx, rec.ID, false, "", managementActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("resolve before submit is an invalid transition", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.ResolveApproval(ctx, rec.ID, true, "", managementActor)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown promotion", func(t *testing.T) {
		f := newPromotionFixture(t)
		_, err := f.commands.SubmitForApproval(ctx, "ghost", fields, marketingActor)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestEditAndDelete(t *testing.T) {
	ctx := context.Background()

	propose := func(t *testing.T, f *promotionFixture) *shared.PromotionRecord {
		t.Helper()
		svc := f.seedService(t)
		rec, err := f.commands.Propose(ctx, proposeRequest(promotion.PromotionService{
			ServiceID:     svc.ID,
			DiscountPrice: 400_000,
		}), salesActor)
		require.NoError(t, err)
		return rec
	}

	rename := func(name string) promotion.ContentEdit {
		return promotion.ContentEdit{Name: &name}
	}

	t.Run("owner edits their draft", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		updated, err := f.commands.Edit(ctx, rec.ID, rename("Renamed"), salesActor)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, promotion.StatusPendingDesign.String(), updated.Status)
	})

	t.Run("non-owner sales edit is forbidden", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.Edit(ctx, rec.ID, rename("Hijacked"), otherSales)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("management edits an approved promotion without a status change", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		_, err := f.commands.SubmitForApproval(ctx, rec.ID, promotion.MarketingFields{}, marketingActor)
		require.NoError(t, err)
		_, err = f.commands.ResolveApproval(ctx, rec.ID, true, "", managementActor)
		require.NoError(t, err)

		updated, err := f.commands.Edit(ctx, rec.ID, rename("Extended Campaign"), managementActor)
		require.NoError(t, err)
		assert.Equal(t, "Extended Campaign", updated.Name)
		assert.Equal(t, promotion.StatusApproved.String(), updated.Status)

		// The owning sales user lost edit access at approval.
		_, err = f.commands.Edit(ctx, rec.ID, rename("Sneaky"), salesActor)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("owner deletes their draft", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		require.NoError(t, f.commands.Delete(ctx, rec.ID, salesActor))
		_, err := f.promotions.Get(ctx, rec.ID)
		assert.Error(t, err)
	})

	t.Run("non-owner delete is forbidden", func(t *testing.T) {
		f := newPromotionFixture(t)
		rec := propose(t, f)

		assert.ErrorIs(t, f.commands.Delete(ctx, rec.ID, otherSales), errs.ErrForbidden)
	})
}
