package response

import (
	"time"

	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/usecase/commands"
	"spa-promotions/internal/usecase/shared"
)

type PromotionLine struct {
	LineID           string `json:"line_id"`
	ServiceID        string `json:"service_id,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	FullPrice        int64  `json:"full_price"`
	DiscountPrice    int64  `json:"discount_price"`
	IsCombo          bool   `json:"is_combo"`
	SelectedDuration string `json:"selected_duration,omitempty"`
	ConsultationNote string `json:"consultation_note,omitempty"`
}

type PromotionResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	Status           string          `json:"status"`
	Services         []PromotionLine `json:"services"`
	ProposerID       string          `json:"proposer_id"`
	SalesNotes       string          `json:"sales_notes,omitempty"`
	MarketingNotes   string          `json:"marketing_notes,omitempty"`
	ManagementNotes  string          `json:"management_notes,omitempty"`
	DesignURL        string          `json:"design_url,omitempty"`
	ConsultationMode string          `json:"consultation_mode"`
	ConsultationText string          `json:"consultation_text,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func NewPromotionResponse(rec *shared.PromotionRecord) PromotionResponse {
	return PromotionResponse{
		ID:               rec.ID,
		Name:             rec.Name,
		StartDate:        rec.StartDate,
		EndDate:          rec.EndDate,
		Status:           rec.Status,
		Services:         toLines(rec.Services),
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
}

type ComposeResponse struct {
	Services         []PromotionLine `json:"services"`
	ConsultationMode string          `json:"consultation_mode"`
	ConsultationText string          `json:"consultation_text"`
}

func NewComposeResponse(result *commands.ComposeResult) ComposeResponse {
	return ComposeResponse{
		Services:         toLines(result.Services),
		ConsultationMode: string(result.ConsultationMode),
		ConsultationText: result.ConsultationText,
	}
}

func toLines(services []promotion.PromotionService) []PromotionLine {
	out := make([]PromotionLine, len(services))
	for i, s := range services {
		out[i] = PromotionLine{
			LineID:           s.LineID,
			ServiceID:        s.ServiceID,
			Name:             s.Name,
			Description:      s.Description,
			FullPrice:        s.FullPrice,
			DiscountPrice:    s.DiscountPrice,
			IsCombo:          s.IsCombo,
			SelectedDuration: s.SelectedDuration,
			ConsultationNote: s.ConsultationNote,
		}
	}
	return out
}
