//go:build unit || e2e

package builder

import (
	"time"

	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	ProposerID string
	SalesNotes string
	Lines      []promotion.PromotionService
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		Name:       "Winter Wellness",
		StartDate:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		ProposerID: uuid.NewString(),
		SalesNotes: "Seasonal push for the massage line",
		Lines: []promotion.PromotionService{
			{
				LineID:           uuid.NewString(),
				ServiceID:        uuid.NewString(),
				Name:             "Hot Stone Massage",
				FullPrice:        500_000,
				DiscountPrice:    400_000,
				ConsultationNote: "Check for skin sensitivity before the first session",
			},
		},
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) WithName(name string) *PromotionBuilder {
	p.Name = name
	return p
}

func (p *PromotionBuilder) WithDates(start, end time.Time) *PromotionBuilder {
	p.StartDate = start
	p.EndDate = end
	return p
}

func (p *PromotionBuilder) WithProposer(id string) *PromotionBuilder {
	p.ProposerID = id
	return p
}

func (p *PromotionBuilder) WithLines(lines ...promotion.PromotionService) *PromotionBuilder {
	p.Lines = lines
	return p
}

func (p *PromotionBuilder) AddLine(line promotion.PromotionService) *PromotionBuilder {
	p.Lines = append(p.Lines, line)
	return p
}

// BuildDraft assembles a PendingDesign aggregate ready for composer and
// workflow calls.
func (p *PromotionBuilder) BuildDraft() *promotion.Promotion {
	draft := promotion.NewDraft(p.ProposerID)
	draft.SetName(p.Name)
	draft.SetDates(p.StartDate, p.EndDate)
	draft.SetSalesNotes(p.SalesNotes)
	draft.ApplyContentEdit(promotion.ContentEdit{Services: p.Lines})
	return draft
}

func (p *PromotionBuilder) BuildRecord() shared.PromotionRecord {
	rec := shared.PromotionToRecord(p.BuildDraft())
	now := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return rec
}
