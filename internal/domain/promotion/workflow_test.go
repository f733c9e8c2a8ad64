//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"spa-promotions/internal/domain/promotion"
	"spa-promotions/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	draft := promotion.NewDraft("proposer-1")

	assert.NotEmpty(t, draft.ID())
	assert.Equal(t, promotion.StatusPendingDesign, draft.Status())
	assert.Equal(t, "proposer-1", draft.ProposerID())
	assert.Empty(t, draft.Services())
}

func TestValidateForSubmit(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.PromotionBuilder)
		errIs  error
	}{
		{
			name:   "complete draft",
			mutate: func(b *builder.PromotionBuilder) {},
		},
		{
			name:   "missing name",
			mutate: func(b *builder.PromotionBuilder) { b.Name = "   " },
			errIs:  promotion.ErrNameRequired,
		},
		{
			name:   "missing dates",
			mutate: func(b *builder.PromotionBuilder) { b.StartDate, b.EndDate = time.Time{}, time.Time{} },
			errIs:  promotion.ErrDatesRequired,
		},
		{
			name: "inverted range",
			mutate: func(b *builder.PromotionBuilder) {
				b.StartDate, b.EndDate = b.EndDate, b.StartDate
			},
			errIs: promotion.ErrInvalidDateRange,
		},
		{
			name:   "no services",
			mutate: func(b *builder.PromotionBuilder) { b.Lines = nil },
			errIs:  promotion.ErrNoServices,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPromotionBuilder()
			tc.mutate(b)
			err := b.BuildDraft().ValidateForSubmit()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitForApproval(t *testing.T) {
	fields := promotion.MarketingFields{
		MarketingNotes: "banner ready",
		DesignURL:      "https://example.com/design.png",
	}

	t.Run("moves a design-stage draft onward", func(t *testing.T) {
		draft := builder.NewPromotionBuilder().BuildDraft()

		require.NoError(t, draft.SubmitForApproval(fields))
		assert.Equal(t, promotion.StatusPendingApproval, draft.Status())
		assert.Equal(t, "banner ready", draft.MarketingNotes())
		assert.Equal(t, "https://example.com/design.png", draft.DesignURL())
	})

	t.Run("double submit is an invalid transition", func(t *testing.T) {
		draft := builder.NewPromotionBuilder().BuildDraft()
		require.NoError(t, draft.SubmitForApproval(fields))

		err := draft.SubmitForApproval(fields)
		assert.ErrorIs(t, err, promotion.ErrInvalidTransition)
		assert.Equal(t, promotion.StatusPendingApproval, draft.Status())
	})

	t.Run("incomplete draft is rejected with no partial effect", func(t *testing.T) {
		draft := builder.NewPromotionBuilder().WithLines().BuildDraft()

		err := draft.SubmitForApproval(fields)
		assert.ErrorIs(t, err, promotion.ErrNoServices)
		assert.Equal(t, promotion.StatusPendingDesign, draft.Status())
		assert.Empty(t, draft.MarketingNotes())
	})
}

func TestResolve(t *testing.T) {
	submitted := func(t *testing.T) *promotion.Promotion {
		t.Helper()
		draft := builder.NewPromotionBuilder().BuildDraft()
		require.NoError(t, draft.SubmitForApproval(promotion.MarketingFields{}))
		return draft
	}

	t.Run("approve", func(t *testing.T) {
		p := submitted(t)
		require.NoError(t, p.Resolve(true, "go ahead"))
		assert.Equal(t, promotion.StatusApproved, p.Status())
		assert.Equal(t, "go ahead", p.ManagementNotes())
	})

	t.Run("reject", func(t *testing.T) {
		p := submitted(t)
		require.NoError(t, p.Resolve(false, "margins too thin"))
		assert.Equal(t, promotion.StatusRejected, p.Status())
	})

	t.Run("double resolve is an invalid transition", func(t *testing.T) {
		p := submitted(t)
		require.NoError(t, p.Resolve(true, ""))

		assert.ErrorIs(t, p.Resolve(false, ""), promotion.ErrInvalidTransition)
		assert.Equal(t, promotion.StatusApproved, p.Status())
	})

	t.Run("resolve from design stage is an invalid transition", func(t *testing.T) {
		draft := builder.NewPromotionBuilder().BuildDraft()
		assert.ErrorIs(t, draft.Resolve(true, ""), promotion.ErrInvalidTransition)
	})
}

func TestApplyContentEdit(t *testing.T) {
	t.Run("status is never touched", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDraft()
		require.NoError(t, p.SubmitForApproval(promotion.MarketingFields{}))
		require.NoError(t, p.Resolve(true, ""))

		name := "Renamed Campaign"
		p.ApplyContentEdit(promotion.ContentEdit{Name: &name})

		assert.Equal(t, "Renamed Campaign", p.Name())
		assert.Equal(t, promotion.StatusApproved, p.Status())
	})

	t.Run("replacing services regenerates consultation", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDraft()
		p.ApplyContentEdit(promotion.ContentEdit{Services: []promotion.PromotionService{
			{LineID: "l9", Name: "Scrub", FullPrice: 100_000, DiscountPrice: 100_000, ConsultationNote: "Exfoliate gently"},
		}})
		assert.Equal(t, "Scrub\nExfoliate gently", p.Consultation().Text())
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from promotion.Status
		to   promotion.Status
		ok   bool
	}{
		{promotion.StatusPendingDesign, promotion.StatusPendingApproval, true},
		{promotion.StatusPendingDesign, promotion.StatusApproved, false},
		{promotion.StatusPendingApproval, promotion.StatusApproved, true},
		{promotion.StatusPendingApproval, promotion.StatusRejected, true},
		{promotion.StatusApproved, promotion.StatusRejected, false},
		{promotion.StatusRejected, promotion.StatusPendingDesign, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
