package promotion

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PromotionService is a priced line item of a promotion: a snapshot of a
// catalog service's pricing captured at selection time. FullPrice is frozen
// at capture; later catalog edits never touch it. A combo line aggregates
// two or more snapshots into one line item and is identified by its own
// LineID, independent of the source service ids.
type PromotionService struct {
	LineID           string `json:"lineId"`
	ServiceID        string `json:"serviceId,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	FullPrice        int64  `json:"fullPrice"`
	DiscountPrice    int64  `json:"discountPrice"`
	IsCombo          bool   `json:"isCombo"`
	SelectedDuration string `json:"selectedDuration,omitempty"`
	ConsultationNote string `json:"consultationNote,omitempty"`
}

// Promotion is the proposal aggregate moving through the approval workflow.
type Promotion struct {
	id              string
	name            string
	startDate       time.Time
	endDate         time.Time
	status          Status
	services        []PromotionService
	proposerID      string
	salesNotes      string
	marketingNotes  string
	managementNotes string
	designURL       string
	consultation    ConsultationSteps
	createdAt       time.Time
	updatedAt       time.Time
}

// NewDraft opens an empty proposal owned by the proposing user. The draft
// is not submittable until it carries a name, a date range and at least one
// service; ValidateForSubmit enforces that at proposal time.
func NewDraft(proposerID string) *Promotion {
	return &Promotion{
		id:           uuid.NewString(),
		status:       StatusPendingDesign,
		proposerID:   proposerID,
		consultation: GeneratedConsultation(nil),
	}
}

func Reconstruct(
	id, name string,
	startDate, endDate time.Time,
	status Status,
	services []PromotionService,
	proposerID, salesNotes, marketingNotes, managementNotes, designURL string,
	consultation ConsultationSteps,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:              id,
		name:            name,
		startDate:       startDate,
		endDate:         endDate,
		status:          status,
		services:        services,
		proposerID:      proposerID,
		salesNotes:      salesNotes,
		marketingNotes:  marketingNotes,
		managementNotes: managementNotes,
		designURL:       designURL,
		consultation:    consultation,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Promotion) ID() string             { return p.id }
func (p *Promotion) Name() string           { return p.name }
func (p *Promotion) StartDate() time.Time   { return p.startDate }
func (p *Promotion) EndDate() time.Time     { return p.endDate }
func (p *Promotion) Status() Status         { return p.status }
func (p *Promotion) ProposerID() string     { return p.proposerID }
func (p *Promotion) SalesNotes() string     { return p.salesNotes }
func (p *Promotion) MarketingNotes() string { return p.marketingNotes }
func (p *Promotion) ManagementNotes() string {
	return p.managementNotes
}
func (p *Promotion) DesignURL() string                 { return p.designURL }
func (p *Promotion) Consultation() ConsultationSteps   { return p.consultation }
func (p *Promotion) CreatedAt() time.Time              { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time              { return p.updatedAt }

// Services returns a copy of the line items; callers cannot mutate the
// aggregate through the slice.
func (p *Promotion) Services() []PromotionService {
	out := make([]PromotionService, len(p.services))
	copy(out, p.services)
	return out
}

func (p *Promotion) SetName(name string) {
	p.name = strings.TrimSpace(name)
}

func (p *Promotion) SetDates(start, end time.Time) {
	p.startDate = start
	p.endDate = end
}

func (p *Promotion) SetSalesNotes(notes string) {
	p.salesNotes = notes
}

// ValidateForSubmit checks the draft invariants: non-empty name, a complete
// non-inverted date range, and at least one service.
func (p *Promotion) ValidateForSubmit() error {
	if strings.TrimSpace(p.name) == "" {
		return ErrNameRequired
	}
	if p.startDate.IsZero() || p.endDate.IsZero() {
		return ErrDatesRequired
	}
	if p.startDate.After(p.endDate) {
		return ErrInvalidDateRange
	}
	if len(p.services) == 0 {
		return ErrNoServices
	}
	return nil
}

func (p *Promotion) findLine(lineID string) int {
	for i, svc := range p.services {
		if svc.LineID == lineID {
			return i
		}
	}
	return -1
}
