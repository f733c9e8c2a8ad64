package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

// DiscountUnset marks a line whose request carried no discount price at
// all. The freeze step substitutes the frozen full price. An explicit zero
// is a real price (a fully discounted line) and passes through unchanged.
const DiscountUnset int64 = -1

type ProposeRequest struct {
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	SalesNotes string
	Services   []promotion.PromotionService
	// ConsultationOverride, when set, latches a manual consultation text
	// instead of the generated aggregate.
	ConsultationOverride *string
}

type PromotionCommands interface {
	Propose(ctx context.Context, req ProposeRequest, actor policy.Actor) (*shared.PromotionRecord, error)
	SubmitForApproval(ctx context.Context, id string, fields promotion.MarketingFields, actor policy.Actor) (*shared.PromotionRecord, error)
	ResolveApproval(ctx context.Context, id string, approved bool, managementNotes string, actor policy.Actor) (*shared.PromotionRecord, error)
	Edit(ctx context.Context, id string, edit promotion.ContentEdit, actor policy.Actor) (*shared.PromotionRecord, error)
	Delete(ctx context.Context, id string, actor policy.Actor) error
}

type promotionCommandsImpl struct {
	promotions shared.PromotionStore
	services   shared.ServiceStore
	clock      clock.Clock
}

func NewPromotionCommands(promotions shared.PromotionStore, services shared.ServiceStore, clk clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{promotions: promotions, services: services, clock: clk}
}

// Propose opens a new proposal at PendingDesign. Catalog-backed line items
// re-freeze their full price from the catalog at this moment; the snapshot
// is decoupled from every later catalog edit.
func (c *promotionCommandsImpl) Propose(ctx context.Context, req ProposeRequest, actor policy.Actor) (*shared.PromotionRecord, error) {
	if !policy.CanPropose(actor) {
		return nil, errs.Mark(errs.New("role may not propose promotions"), errs.ErrForbidden)
	}

	lines, err := c.freezeLines(ctx, req.Services)
	if err != nil {
		return nil, err
	}

	draft := promotion.NewDraft(actor.ID)
	draft.SetName(req.Name)
	draft.SetDates(req.StartDate, req.EndDate)
	draft.SetSalesNotes(req.SalesNotes)
	draft.ApplyContentEdit(promotion.ContentEdit{Services: lines})
	if req.ConsultationOverride != nil {
		draft.OverrideConsultation(*req.ConsultationOverride)
	}

	if err := draft.ValidateForSubmit(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}

	rec := shared.PromotionToRecord(draft)
	now := c.clock.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := c.promotions.Create(ctx, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (c *promotionCommandsImpl) SubmitForApproval(ctx context.Context, id string, fields promotion.MarketingFields, actor policy.Actor) (*shared.PromotionRecord, error) {
	agg, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanActMarketing(agg, actor) {
		// Distinguish a wrong role from a wrong status so double submits
		// surface as invalid transitions, not permission errors.
		if agg.Status() != promotion.StatusPendingDesign {
			return nil, errs.Mark(promotion.ErrInvalidTransition, errs.ErrInvalidTransition)
		}
		return nil, errs.Mark(errs.New("only marketing may submit for approval"), errs.ErrForbidden)
	}
	if err := agg.SubmitForApproval(fields); err != nil {
		return nil, c.markWorkflowErr(err)
	}
	return c.save(ctx, agg)
}

func (c *promotionCommandsImpl) ResolveApproval(ctx context.Context, id string, approved bool, managementNotes string, actor policy.Actor) (*shared.PromotionRecord, error) {
	agg, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanActManagement(agg, actor) {
		if agg.Status() != promotion.StatusPendingApproval {
			return nil, errs.Mark(promotion.ErrInvalidTransition, errs.ErrInvalidTransition)
		}
		return nil, errs.Mark(errs.New("only management may resolve approval"), errs.ErrForbidden)
	}
	if err := agg.Resolve(approved, managementNotes); err != nil {
		return nil, c.markWorkflowErr(err)
	}
	return c.save(ctx, agg)
}

// Edit overwrites content without touching the workflow status. Drafts are
// editable by their owner or Management; Approved promotions by Management
// only.
func (c *promotionCommandsImpl) Edit(ctx context.Context, id string, edit promotion.ContentEdit, actor policy.Actor) (*shared.PromotionRecord, error) {
	agg, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	switch agg.Status() {
	case promotion.StatusPendingDesign:
		allowed = policy.CanEditDraft(agg, actor)
	case promotion.StatusApproved:
		allowed = policy.CanEditApproved(agg, actor)
	}
	if !allowed {
		return nil, errs.Mark(errs.New("promotion is not editable by this user"), errs.ErrForbidden)
	}

	if edit.Services != nil {
		frozen, err := c.freezeLines(ctx, edit.Services)
		if err != nil {
			return nil, err
		}
		edit.Services = frozen
	}
	agg.ApplyContentEdit(edit)
	if err := agg.ValidateForSubmit(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	return c.save(ctx, agg)
}

func (c *promotionCommandsImpl) Delete(ctx context.Context, id string, actor policy.Actor) error {
	agg, err := c.load(ctx, id)
	if err != nil {
		return err
	}
	// Management may discard any proposal; Sales only their own while it
	// is still in design.
	if !policy.CanDeleteDraft(agg, actor) {
		return errs.Mark(errs.New("promotion is not deletable by this user"), errs.ErrForbidden)
	}
	if err := c.promotions.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func (c *promotionCommandsImpl) load(ctx context.Context, id string) (*promotion.Promotion, error) {
	rec, err := c.promotions.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	agg, err := shared.PromotionFromRecord(rec)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt promotion record")
	}
	return agg, nil
}

func (c *promotionCommandsImpl) save(ctx context.Context, agg *promotion.Promotion) (*shared.PromotionRecord, error) {
	rec := shared.PromotionToRecord(agg)
	rec.UpdatedAt = c.clock.Now()
	if err := c.promotions.Update(ctx, rec.ID, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (c *promotionCommandsImpl) markWorkflowErr(err error) error {
	if errors.Is(err, promotion.ErrInvalidTransition) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return errs.Mark(err, errs.ErrInvalidOperation)
}

// freezeLines re-captures pricing for catalog-backed line items and assigns
// fresh line ids where missing. Custom and combo lines pass through with
// their client-supplied prices. Lines carrying DiscountUnset start at their
// frozen full price.
func (c *promotionCommandsImpl) freezeLines(ctx context.Context, lines []promotion.PromotionService) ([]promotion.PromotionService, error) {
	out := make([]promotion.PromotionService, len(lines))
	for i, line := range lines {
		if line.LineID == "" {
			line.LineID = uuid.NewString()
		}
		if line.ServiceID != "" && !line.IsCombo {
			rec, err := c.services.Get(ctx, line.ServiceID)
			if err != nil {
				return nil, errs.Mark(errs.Wrap(err, "unknown service in proposal"), errs.ErrInvalidOperation)
			}
			line.Name = rec.Name
			line.FullPrice = rec.PriceOriginal
			if line.ConsultationNote == "" {
				line.ConsultationNote = rec.ConsultationNote
			}
		}
		if line.DiscountPrice == DiscountUnset {
			line.DiscountPrice = line.FullPrice
		}
		out[i] = line
	}
	return out, nil
}
