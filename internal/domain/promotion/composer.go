package promotion

import (
	"strings"

	"github.com/google/uuid"

	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/domain/pricing"
)

// IDSet selects line items for a bulk pricing operation.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// ToggleService adds a snapshot of the catalog service to the draft, or
// removes it when already selected. Presence is keyed by source service id
// plus the combo flag; lines already merged into a combo are tracked by the
// combo's own line id, so re-selecting a merged service adds a fresh flat
// line.
func (p *Promotion) ToggleService(svc *catalog.Service) {
	isCombo := svc.Kind() == catalog.KindCombo
	for i, line := range p.services {
		if line.ServiceID == svc.ID() && line.IsCombo == isCombo {
			p.services = append(p.services[:i], p.services[i+1:]...)
			p.consultation = p.consultation.regenerate(p.services)
			return
		}
	}

	base := svc.Prices().Original()
	p.services = append(p.services, PromotionService{
		LineID:           uuid.NewString(),
		ServiceID:        svc.ID(),
		Name:             svc.Name(),
		Description:      svc.Description(),
		FullPrice:        base,
		DiscountPrice:    base,
		IsCombo:          isCombo,
		ConsultationNote: svc.ConsultationNote(),
	})
	p.consultation = p.consultation.regenerate(p.services)
}

// AddCustomService appends a zero-priced editable placeholder for a service
// invented ad hoc for this promotion. Its id is generated and never appears
// in the catalog.
func (p *Promotion) AddCustomService() PromotionService {
	line := PromotionService{
		LineID: uuid.NewString(),
		Name:   "New service",
	}
	p.services = append(p.services, line)
	p.consultation = p.consultation.regenerate(p.services)
	return line
}

// LineEdit carries the editable fields of a line item. Nil fields are left
// untouched. FullPrice is only editable on custom lines; captured snapshots
// keep the catalog price they were taken with.
type LineEdit struct {
	Name             *string
	Description      *string
	FullPrice        *int64
	DiscountPrice    *int64
	SelectedDuration *string
	ConsultationNote *string
}

func (p *Promotion) EditLine(lineID string, edit LineEdit) error {
	i := p.findLine(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	line := &p.services[i]
	if edit.Name != nil && strings.TrimSpace(*edit.Name) != "" {
		line.Name = strings.TrimSpace(*edit.Name)
	}
	if edit.Description != nil {
		line.Description = *edit.Description
	}
	if edit.FullPrice != nil && line.ServiceID == "" && !line.IsCombo {
		line.FullPrice = *edit.FullPrice
	}
	if edit.DiscountPrice != nil {
		line.DiscountPrice = *edit.DiscountPrice
	}
	if edit.SelectedDuration != nil {
		line.SelectedDuration = *edit.SelectedDuration
	}
	if edit.ConsultationNote != nil {
		line.ConsultationNote = *edit.ConsultationNote
		p.consultation = p.consultation.regenerate(p.services)
	}
	return nil
}

func (p *Promotion) RemoveLine(lineID string) error {
	i := p.findLine(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	p.services = append(p.services[:i], p.services[i+1:]...)
	p.consultation = p.consultation.regenerate(p.services)
	return nil
}

// ApplyBulkDiscount sets the discount price of every selected line to its
// full price reduced by percent. An empty selection or an out-of-range
// percent leaves every line unchanged.
func (p *Promotion) ApplyBulkDiscount(selected IDSet, percent float64) {
	if len(selected) == 0 || !pricing.ValidPercent(percent) {
		return
	}
	for i := range p.services {
		if selected.Has(p.services[i].LineID) {
			p.services[i].DiscountPrice = pricing.ApplyPercentDiscount(p.services[i].FullPrice, percent)
		}
	}
}

// ApplyTierPrice overwrites the discount price of every selected line with
// the named catalog tier price of its source service. Lines whose tier
// price is zero or absent are skipped; a missing tier must never zero out
// an existing discount.
func (p *Promotion) ApplyTierPrice(selected IDSet, tier catalog.Tier, lookup func(serviceID string) (catalog.TierPrices, bool)) {
	if len(selected) == 0 || !tier.IsValid() {
		return
	}
	for i := range p.services {
		line := &p.services[i]
		if !selected.Has(line.LineID) || line.ServiceID == "" {
			continue
		}
		prices, ok := lookup(line.ServiceID)
		if !ok {
			continue
		}
		if tierPrice := prices.TierPrice(tier); tierPrice > 0 {
			line.DiscountPrice = tierPrice
		}
	}
}

// MergeIntoCombo replaces the selected lines with a single combo line.
// The combo's full price is the exact sum of the constituents' full prices
// and its discount price starts at that same sum. The merge is
// irreversible: constituents leave the flat list and no decompose
// operation exists.
func (p *Promotion) MergeIntoCombo(selected IDSet) (PromotionService, error) {
	if len(selected) < 2 {
		return PromotionService{}, ErrComboTooSmall
	}

	var (
		constituents []PromotionService
		remaining    []PromotionService
		insertAt     = -1
	)
	for i, line := range p.services {
		if selected.Has(line.LineID) {
			if insertAt < 0 {
				insertAt = i
			}
			constituents = append(constituents, line)
		} else {
			remaining = append(remaining, line)
		}
	}
	if len(constituents) < 2 {
		return PromotionService{}, ErrComboTooSmall
	}

	var (
		total int64
		names []string
		notes []string
	)
	for _, c := range constituents {
		total += c.FullPrice
		names = append(names, c.Name)
		if c.ConsultationNote != "" {
			notes = append(notes, c.ConsultationNote)
		}
	}

	combo := PromotionService{
		LineID:           uuid.NewString(),
		Name:             strings.Join(names, " + "),
		Description:      "Includes: " + strings.Join(names, ", ") + ".",
		FullPrice:        total,
		DiscountPrice:    total,
		IsCombo:          true,
		ConsultationNote: strings.Join(notes, "\n"),
	}

	// Keep the combo where its first constituent sat.
	pos := insertAt
	if pos > len(remaining) {
		pos = len(remaining)
	}
	merged := make([]PromotionService, 0, len(remaining)+1)
	merged = append(merged, remaining[:pos]...)
	merged = append(merged, combo)
	merged = append(merged, remaining[pos:]...)
	p.services = merged

	p.consultation = p.consultation.regenerate(p.services)
	return combo, nil
}

// OverrideConsultation latches a manual consultation text; automatic
// regeneration stops until ResetConsultation.
func (p *Promotion) OverrideConsultation(text string) {
	p.consultation = p.consultation.override(text)
}

// ResetConsultation discards a manual override and re-derives the text from
// the current selection.
func (p *Promotion) ResetConsultation() {
	p.consultation = p.consultation.reset(p.services)
}
