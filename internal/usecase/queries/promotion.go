package queries

import (
	"context"
	"sort"
	"time"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/pricing"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

// Read models. Line views carry a derived percent so displays never
// recompute pricing themselves.
type PromotionLineView struct {
	LineID           string `json:"line_id"`
	ServiceID        string `json:"service_id,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	FullPrice        int64  `json:"full_price"`
	DiscountPrice    int64  `json:"discount_price"`
	DiscountPercent  int    `json:"discount_percent"`
	IsCombo          bool   `json:"is_combo"`
	SelectedDuration string `json:"selected_duration,omitempty"`
	ConsultationNote string `json:"consultation_note,omitempty"`
}

type PromotionView struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	StartDate        time.Time           `json:"start_date"`
	EndDate          time.Time           `json:"end_date"`
	Status           string              `json:"status"`
	TemporalStatus   string              `json:"temporal_status"`
	Services         []PromotionLineView `json:"services"`
	ProposerID       string              `json:"proposer_id"`
	SalesNotes       string              `json:"sales_notes,omitempty"`
	MarketingNotes   string              `json:"marketing_notes,omitempty"`
	ManagementNotes  string              `json:"management_notes,omitempty"`
	DesignURL        string              `json:"design_url,omitempty"`
	ConsultationMode string              `json:"consultation_mode"`
	ConsultationText string              `json:"consultation_text,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type PromotionListItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	TemporalStatus string    `json:"temporal_status"`
	ServiceCount   int       `json:"service_count"`
	ProposerID     string    `json:"proposer_id"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PromotionQueries interface {
	// Active lists approved promotions whose end date has not passed,
	// earliest start first.
	Active(ctx context.Context, actor policy.Actor) ([]PromotionListItem, error)
	// History lists every proposal not currently running: any non-approved
	// status, or approved promotions whose end date has passed. The month
	// filter narrows to proposals starting in the given month of the given
	// year; a zero month or year disables it.
	History(ctx context.Context, month time.Month, year int, actor policy.Actor) ([]PromotionListItem, error)
	ByID(ctx context.Context, id string, actor policy.Actor) (*PromotionView, error)
}

type promotionQueriesImpl struct {
	promotions shared.PromotionStore
	clock      clock.Clock
}

func NewPromotionQueries(promotions shared.PromotionStore, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{promotions: promotions, clock: clk}
}

func (q *promotionQueriesImpl) Active(ctx context.Context, actor policy.Actor) ([]PromotionListItem, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}
	recs, err := q.promotions.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	now := q.clock.Now()
	items := make([]PromotionListItem, 0, len(recs))
	for _, rec := range recs {
		agg, err := shared.PromotionFromRecord(rec)
		if err != nil {
			continue
		}
		if !agg.IsRunning(now) {
			continue
		}
		items = append(items, listItem(rec, agg.Classify(now).String()))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].StartDate.Equal(items[j].StartDate) {
			return items[i].Name < items[j].Name
		}
		return items[i].StartDate.Before(items[j].StartDate)
	})
	return items, nil
}

func (q *promotionQueriesImpl) History(ctx context.Context, month time.Month, year int, actor policy.Actor) ([]PromotionListItem, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}
	recs, err := q.promotions.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	now := q.clock.Now()
	items := make([]PromotionListItem, 0, len(recs))
	for _, rec := range recs {
		if year != 0 && month != 0 {
			if rec.StartDate.Year() != year || rec.StartDate.Month() != month {
				continue
			}
		}
		badge := ""
		if agg, err := shared.PromotionFromRecord(rec); err == nil {
			// Running promotions belong to the active view, not here.
			if agg.IsRunning(now) {
				continue
			}
			badge = agg.Classify(now).String()
		}
		items = append(items, listItem(rec, badge))
	}
	// Newest proposals first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartDate.After(items[j].StartDate)
	})
	return items, nil
}

func (q *promotionQueriesImpl) ByID(ctx context.Context, id string, actor policy.Actor) (*PromotionView, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}
	rec, err := q.promotions.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	agg, err := shared.PromotionFromRecord(rec)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt promotion record")
	}

	view := &PromotionView{
		ID:               rec.ID,
		Name:             rec.Name,
		StartDate:        rec.StartDate,
		EndDate:          rec.EndDate,
		Status:           rec.Status,
		TemporalStatus:   agg.Classify(q.clock.Now()).String(),
		ProposerID:       rec.ProposerID,
		SalesNotes:       rec.SalesNotes,
		MarketingNotes:   rec.MarketingNotes,
		ManagementNotes:  rec.ManagementNotes,
		DesignURL:        rec.DesignURL,
		ConsultationMode: rec.ConsultationMode,
		ConsultationText: rec.ConsultationText,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	view.Services = make([]PromotionLineView, len(rec.Services))
	for i, line := range rec.Services {
		view.Services[i] = PromotionLineView{
			LineID:           line.LineID,
			ServiceID:        line.ServiceID,
			Name:             line.Name,
			Description:      line.Description,
			FullPrice:        line.FullPrice,
			DiscountPrice:    line.DiscountPrice,
			DiscountPercent:  pricing.DerivePercent(line.FullPrice, line.DiscountPrice),
			IsCombo:          line.IsCombo,
			SelectedDuration: line.SelectedDuration,
			ConsultationNote: line.ConsultationNote,
		}
	}
	return view, nil
}

func listItem(rec shared.PromotionRecord, badge string) PromotionListItem {
	return PromotionListItem{
		ID:             rec.ID,
		Name:           rec.Name,
		StartDate:      rec.StartDate,
		EndDate:        rec.EndDate,
		Status:         rec.Status,
		TemporalStatus: badge,
		ServiceCount:   len(rec.Services),
		ProposerID:     rec.ProposerID,
		UpdatedAt:      rec.UpdatedAt,
	}
}
