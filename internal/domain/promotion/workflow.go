package promotion

import (
	"strings"
	"time"
)

// MarketingFields is what Marketing attaches when pushing a proposal to
// approval.
type MarketingFields struct {
	MarketingNotes string
	DesignURL      string
}

// SubmitForApproval moves the proposal from PendingDesign to
// PendingApproval, attaching the marketing fields. Any other current status
// rejects the action outright with no partial effect.
func (p *Promotion) SubmitForApproval(fields MarketingFields) error {
	if !p.status.CanTransitionTo(StatusPendingApproval) {
		return ErrInvalidTransition
	}
	if err := p.ValidateForSubmit(); err != nil {
		return err
	}
	p.marketingNotes = fields.MarketingNotes
	p.designURL = fields.DesignURL
	p.status = StatusPendingApproval
	return nil
}

// Resolve settles a proposal awaiting approval, attaching management notes.
// Approved and Rejected are both reachable only from PendingApproval;
// resolving twice is an invalid transition.
func (p *Promotion) Resolve(approved bool, managementNotes string) error {
	target := StatusApproved
	if !approved {
		target = StatusRejected
	}
	if !p.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	p.managementNotes = managementNotes
	p.status = target
	return nil
}

// ContentEdit is an overwrite of draft fields that leaves the workflow
// status untouched. It applies to PendingDesign drafts and, for Management,
// to Approved promotions.
type ContentEdit struct {
	Name            *string
	StartDate       *time.Time
	EndDate         *time.Time
	Services        []PromotionService
	SalesNotes      *string
	MarketingNotes  *string
	ManagementNotes *string
	DesignURL       *string
	Consultation    *string
	ResetConsult    bool
}

// ApplyContentEdit is a content update, not a state transition: the status
// never changes here. Which actors may call it for which status is the
// policy layer's concern.
func (p *Promotion) ApplyContentEdit(edit ContentEdit) {
	if edit.Name != nil {
		p.name = strings.TrimSpace(*edit.Name)
	}
	if edit.StartDate != nil {
		p.startDate = *edit.StartDate
	}
	if edit.EndDate != nil {
		p.endDate = *edit.EndDate
	}
	if edit.Services != nil {
		p.services = edit.Services
		p.consultation = p.consultation.regenerate(p.services)
	}
	if edit.SalesNotes != nil {
		p.salesNotes = *edit.SalesNotes
	}
	if edit.MarketingNotes != nil {
		p.marketingNotes = *edit.MarketingNotes
	}
	if edit.ManagementNotes != nil {
		p.managementNotes = *edit.ManagementNotes
	}
	if edit.DesignURL != nil {
		p.designURL = *edit.DesignURL
	}
	if edit.ResetConsult {
		p.ResetConsultation()
	} else if edit.Consultation != nil {
		p.OverrideConsultation(*edit.Consultation)
	}
}
