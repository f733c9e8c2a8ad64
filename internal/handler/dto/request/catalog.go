package request

import (
	"spa-promotions/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	Kind             string  `json:"kind" binding:"required"`
	PriceOriginal    int64   `json:"price_original" binding:"min=0"`
	DiscountPercent  float64 `json:"discount_percent"`
	Price5For5       int64   `json:"price_5for5"`
	Price10For15     int64   `json:"price_10for15"`
	PriceSession5    int64   `json:"price_session5"`
	PriceSession10   int64   `json:"price_session10"`
	PriceSession20   int64   `json:"price_session20"`
	ConsultationNote string  `json:"consultation_note"`
}

func (r *CreateServiceRequest) ToCommand() commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		Name:             r.Name,
		Description:      r.Description,
		Category:         r.Category,
		Kind:             r.Kind,
		PriceOriginal:    r.PriceOriginal,
		DiscountPercent:  r.DiscountPercent,
		Price5For5:       r.Price5For5,
		Price10For15:     r.Price10For15,
		PriceSession5:    r.PriceSession5,
		PriceSession10:   r.PriceSession10,
		PriceSession20:   r.PriceSession20,
		ConsultationNote: r.ConsultationNote,
	}
}

type UpdateServiceRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Category         *string  `json:"category"`
	PriceOriginal    *int64   `json:"price_original"`
	DiscountPercent  *float64 `json:"discount_percent"`
	PricePromo       *int64   `json:"price_promo"`
	Price5For5       *int64   `json:"price_5for5"`
	Price10For15     *int64   `json:"price_10for15"`
	PriceSession5    *int64   `json:"price_session5"`
	PriceSession10   *int64   `json:"price_session10"`
	PriceSession20   *int64   `json:"price_session20"`
	ConsultationNote *string  `json:"consultation_note"`
}

func (r *UpdateServiceRequest) ToCommand() commands.UpdateServiceRequest {
	return commands.UpdateServiceRequest{
		Name:             r.Name,
		Description:      r.Description,
		Category:         r.Category,
		PriceOriginal:    r.PriceOriginal,
		DiscountPercent:  r.DiscountPercent,
		PricePromo:       r.PricePromo,
		Price5For5:       r.Price5For5,
		Price10For15:     r.Price10For15,
		PriceSession5:    r.PriceSession5,
		PriceSession10:   r.PriceSession10,
		PriceSession20:   r.PriceSession20,
		ConsultationNote: r.ConsultationNote,
	}
}

type AddCategoryRequest struct {
	Label string `json:"label" binding:"required"`
}

type RenameCategoryRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}
