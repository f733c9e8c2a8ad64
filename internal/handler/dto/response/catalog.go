package response

import (
	"time"

	"spa-promotions/internal/usecase/shared"
)

type ServiceResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category,omitempty"`
	Kind             string    `json:"kind"`
	PriceOriginal    int64     `json:"price_original"`
	DiscountPercent  float64   `json:"discount_percent"`
	PricePromo       int64     `json:"price_promo"`
	Price5For5       int64     `json:"price_5for5"`
	Price10For15     int64     `json:"price_10for15"`
	PriceSession5    int64     `json:"price_session5"`
	PriceSession10   int64     `json:"price_session10"`
	PriceSession20   int64     `json:"price_session20"`
	ConsultationNote string    `json:"consultation_note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewServiceResponse(rec *shared.ServiceRecord) ServiceResponse {
	return ServiceResponse{
		ID:               rec.ID,
		Name:             rec.Name,
		Description:      rec.Description,
		Category:         rec.Category,
		Kind:             rec.Kind,
		PriceOriginal:    rec.PriceOriginal,
		DiscountPercent:  rec.DiscountPercent,
		PricePromo:       rec.PricePromo,
		Price5For5:       rec.Price5For5,
		Price10For15:     rec.Price10For15,
		PriceSession5:    rec.PriceSession5,
		PriceSession10:   rec.PriceSession10,
		PriceSession20:   rec.PriceSession20,
		ConsultationNote: rec.ConsultationNote,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

type RenameCategoryResponse struct {
	Renamed []string `json:"renamed"`
}
