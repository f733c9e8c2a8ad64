package shared

import (
	"time"

	"spa-promotions/internal/domain/promotion"
)

// Store-facing record shapes. These are the documents the collaborator
// persists and fans out to watchers; the commands layer converts between
// them and the domain aggregates.

type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r UserRecord) RecordID() string { return r.ID }

type ServiceRecord struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category,omitempty"`
	Kind             string    `json:"kind"`
	PriceOriginal    int64     `json:"priceOriginal"`
	DiscountPercent  float64   `json:"discountPercent"`
	PricePromo       int64     `json:"pricePromo"`
	Price5For5       int64     `json:"price5For5"`
	Price10For15     int64     `json:"price10For15"`
	PriceSession5    int64     `json:"priceSession5"`
	PriceSession10   int64     `json:"priceSession10"`
	PriceSession20   int64     `json:"priceSession20"`
	ConsultationNote string    `json:"consultationNote,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (r ServiceRecord) RecordID() string { return r.ID }

type PromotionRecord struct {
	ID               string                        `json:"id"`
	Name             string                        `json:"name"`
	StartDate        time.Time                     `json:"startDate"`
	EndDate          time.Time                     `json:"endDate"`
	Status           string                        `json:"status"`
	Services         []promotion.PromotionService  `json:"services"`
	ProposerID       string                        `json:"proposerId"`
	SalesNotes       string                        `json:"salesNotes,omitempty"`
	MarketingNotes   string                        `json:"marketingNotes,omitempty"`
	ManagementNotes  string                        `json:"managementNotes,omitempty"`
	DesignURL        string                        `json:"designUrl,omitempty"`
	ConsultationMode string                        `json:"consultationMode"`
	ConsultationText string                        `json:"consultationText,omitempty"`
	CreatedAt        time.Time                     `json:"createdAt"`
	UpdatedAt        time.Time                     `json:"updatedAt"`
}

func (r PromotionRecord) RecordID() string { return r.ID }

// RegistryRecord is the category registry persisted as a single document so
// label changes ride the same change feed as everything else.
type RegistryRecord struct {
	ID        string    `json:"id"`
	Labels    []string  `json:"labels"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r RegistryRecord) RecordID() string { return r.ID }

// CategoryRegistryID is the fixed id of the singleton registry document.
const CategoryRegistryID = "category-registry"
