package commands

import (
	"context"
	"time"

	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

// ComposeOp names one editing step applied to a draft's line items.
type ComposeOp string

const (
	OpToggleService   ComposeOp = "toggle_service"
	OpAddCustom       ComposeOp = "add_custom"
	OpEditLine        ComposeOp = "edit_line"
	OpRemoveLine      ComposeOp = "remove_line"
	OpBulkDiscount    ComposeOp = "bulk_discount"
	OpApplyTier       ComposeOp = "apply_tier"
	OpMergeCombo      ComposeOp = "merge_combo"
	OpOverrideConsult ComposeOp = "override_consultation"
	OpResetConsult    ComposeOp = "reset_consultation"
)

// ComposeRequest carries the draft's current working state plus one
// operation. The server owns every pricing rule; clients only ship state
// back and forth.
type ComposeRequest struct {
	Services         []promotion.PromotionService
	ConsultationMode promotion.ConsultationMode
	ConsultationText string

	Op              ComposeOp
	ServiceID       string   // toggle_service
	LineID          string   // edit_line, remove_line
	SelectedLineIDs []string // bulk_discount, apply_tier, merge_combo
	Percent         float64  // bulk_discount
	Tier            string   // apply_tier
	Line            promotion.LineEdit
	Text            string // override_consultation
}

type ComposeResult struct {
	Services         []promotion.PromotionService
	ConsultationMode promotion.ConsultationMode
	ConsultationText string
}

type ComposerCommands interface {
	Compose(ctx context.Context, req ComposeRequest, actor policy.Actor) (*ComposeResult, error)
}

type composerCommandsImpl struct {
	services shared.ServiceStore
}

func NewComposerCommands(services shared.ServiceStore) ComposerCommands {
	return &composerCommandsImpl{services: services}
}

func (c *composerCommandsImpl) Compose(ctx context.Context, req ComposeRequest, actor policy.Actor) (*ComposeResult, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}

	// A scratch draft carries the composer state; nothing here is
	// persisted.
	mode := req.ConsultationMode
	if mode == "" {
		mode = promotion.ConsultationGenerated
	}
	lines := make([]promotion.PromotionService, len(req.Services))
	for i, line := range req.Services {
		if line.DiscountPrice == DiscountUnset {
			line.DiscountPrice = line.FullPrice
		}
		lines[i] = line
	}
	draft := promotion.Reconstruct(
		"", "", time.Time{}, time.Time{},
		promotion.StatusPendingDesign,
		lines,
		actor.ID, "", "", "", "",
		promotion.ReconstructConsultation(mode, req.ConsultationText),
		time.Time{}, time.Time{},
	)

	if err := c.apply(ctx, draft, req); err != nil {
		return nil, err
	}

	return &ComposeResult{
		Services:         draft.Services(),
		ConsultationMode: draft.Consultation().Mode(),
		ConsultationText: draft.Consultation().Text(),
	}, nil
}

func (c *composerCommandsImpl) apply(ctx context.Context, draft *promotion.Promotion, req ComposeRequest) error {
	switch req.Op {
	case OpToggleService:
		rec, err := c.services.Get(ctx, req.ServiceID)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "toggle unknown service"), errs.ErrInvalidOperation)
		}
		svc, err := shared.ServiceFromRecord(rec)
		if err != nil {
			return errs.Wrap(err, "corrupt service record")
		}
		draft.ToggleService(svc)
		return nil

	case OpAddCustom:
		draft.AddCustomService()
		return nil

	case OpEditLine:
		if err := draft.EditLine(req.LineID, req.Line); err != nil {
			return errs.Mark(err, errs.ErrInvalidOperation)
		}
		return nil

	case OpRemoveLine:
		if err := draft.RemoveLine(req.LineID); err != nil {
			return errs.Mark(err, errs.ErrInvalidOperation)
		}
		return nil

	case OpBulkDiscount:
		draft.ApplyBulkDiscount(promotion.NewIDSet(req.SelectedLineIDs...), req.Percent)
		return nil

	case OpApplyTier:
		tier, err := catalog.NewTier(req.Tier)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidOperation)
		}
		draft.ApplyTierPrice(promotion.NewIDSet(req.SelectedLineIDs...), tier, func(serviceID string) (catalog.TierPrices, bool) {
			rec, err := c.services.Get(ctx, serviceID)
			if err != nil {
				return catalog.TierPrices{}, false
			}
			svc, err := shared.ServiceFromRecord(rec)
			if err != nil {
				return catalog.TierPrices{}, false
			}
			return svc.Prices(), true
		})
		return nil

	case OpMergeCombo:
		if _, err := draft.MergeIntoCombo(promotion.NewIDSet(req.SelectedLineIDs...)); err != nil {
			return errs.Mark(err, errs.ErrInvalidOperation)
		}
		return nil

	case OpOverrideConsult:
		draft.OverrideConsultation(req.Text)
		return nil

	case OpResetConsult:
		draft.ResetConsultation()
		return nil

	default:
		return errs.Mark(errs.New("unknown compose operation"), errs.ErrInvalidOperation)
	}
}
