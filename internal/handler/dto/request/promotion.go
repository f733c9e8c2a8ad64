package request

import (
	"time"

	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/usecase/commands"
)

// PromotionLine distinguishes an omitted discount_price from an explicit
// zero: omitted starts the line at its full price, zero means free.
type PromotionLine struct {
	LineID           string `json:"line_id"`
	ServiceID        string `json:"service_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	FullPrice        int64  `json:"full_price"`
	DiscountPrice    *int64 `json:"discount_price"`
	IsCombo          bool   `json:"is_combo"`
	SelectedDuration string `json:"selected_duration"`
	ConsultationNote string `json:"consultation_note"`
}

func (l PromotionLine) toDomain() promotion.PromotionService {
	discount := commands.DiscountUnset
	if l.DiscountPrice != nil {
		discount = *l.DiscountPrice
	}
	return promotion.PromotionService{
		LineID:           l.LineID,
		ServiceID:        l.ServiceID,
		Name:             l.Name,
		Description:      l.Description,
		FullPrice:        l.FullPrice,
		DiscountPrice:    discount,
		IsCombo:          l.IsCombo,
		SelectedDuration: l.SelectedDuration,
		ConsultationNote: l.ConsultationNote,
	}
}

func toDomainLines(lines []PromotionLine) []promotion.PromotionService {
	out := make([]promotion.PromotionService, len(lines))
	for i, l := range lines {
		out[i] = l.toDomain()
	}
	return out
}

type ProposePromotionRequest struct {
	Name                 string          `json:"name" binding:"required"`
	StartDate            time.Time       `json:"start_date" binding:"required"`
	EndDate              time.Time       `json:"end_date" binding:"required"`
	SalesNotes           string          `json:"sales_notes"`
	Services             []PromotionLine `json:"services" binding:"required"`
	ConsultationOverride *string         `json:"consultation_override"`
}

func (r *ProposePromotionRequest) ToCommand() commands.ProposeRequest {
	return commands.ProposeRequest{
		Name:                 r.Name,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		SalesNotes:           r.SalesNotes,
		Services:             toDomainLines(r.Services),
		ConsultationOverride: r.ConsultationOverride,
	}
}

type SubmitForApprovalRequest struct {
	MarketingNotes string `json:"marketing_notes"`
	DesignURL      string `json:"design_url"`
}

func (r *SubmitForApprovalRequest) ToFields() promotion.MarketingFields {
	return promotion.MarketingFields{
		MarketingNotes: r.MarketingNotes,
		DesignURL:      r.DesignURL,
	}
}

type ResolveApprovalRequest struct {
	Approved        *bool  `json:"approved" binding:"required"`
	ManagementNotes string `json:"management_notes"`
}

type EditPromotionRequest struct {
	Name                 *string         `json:"name"`
	StartDate            *time.Time      `json:"start_date"`
	EndDate              *time.Time      `json:"end_date"`
	SalesNotes           *string         `json:"sales_notes"`
	Services             []PromotionLine `json:"services"`
	ConsultationOverride *string         `json:"consultation_override"`
	ResetConsultation    bool            `json:"reset_consultation"`
}

func (r *EditPromotionRequest) ToEdit() promotion.ContentEdit {
	edit := promotion.ContentEdit{
		Name:         r.Name,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		SalesNotes:   r.SalesNotes,
		Consultation: r.ConsultationOverride,
		ResetConsult: r.ResetConsultation,
	}
	if r.Services != nil {
		edit.Services = toDomainLines(r.Services)
	}
	return edit
}

type ComposeRequest struct {
	Services         []PromotionLine `json:"services"`
	ConsultationMode string          `json:"consultation_mode"`
	ConsultationText string          `json:"consultation_text"`

	Op              string   `json:"op" binding:"required"`
	ServiceID       string   `json:"service_id"`
	LineID          string   `json:"line_id"`
	SelectedLineIDs []string `json:"selected_line_ids"`
	Percent         float64  `json:"percent"`
	Tier            string   `json:"tier"`
	Text            string   `json:"text"`

	Line struct {
		Name             *string `json:"name"`
		Description      *string `json:"description"`
		FullPrice        *int64  `json:"full_price"`
		DiscountPrice    *int64  `json:"discount_price"`
		SelectedDuration *string `json:"selected_duration"`
		ConsultationNote *string `json:"consultation_note"`
	} `json:"line"`
}

func (r *ComposeRequest) ToCommand() commands.ComposeRequest {
	return commands.ComposeRequest{
		Services:         toDomainLines(r.Services),
		ConsultationMode: promotion.ConsultationMode(r.ConsultationMode),
		ConsultationText: r.ConsultationText,
		Op:               commands.ComposeOp(r.Op),
		ServiceID:        r.ServiceID,
		LineID:           r.LineID,
		SelectedLineIDs:  r.SelectedLineIDs,
		Percent:          r.Percent,
		Tier:             r.Tier,
		Text:             r.Text,
		Line: promotion.LineEdit{
			Name:             r.Line.Name,
			Description:      r.Line.Description,
			FullPrice:        r.Line.FullPrice,
			DiscountPrice:    r.Line.DiscountPrice,
			SelectedDuration: r.Line.SelectedDuration,
			ConsultationNote: r.Line.ConsultationNote,
		},
	}
}
