//go:build unit || e2e

package builder

import (
	"time"

	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	Name             string
	Description      string
	Category         string
	Kind             string
	PriceOriginal    int64
	DiscountPercent  float64
	Price5For5       int64
	Price10For15     int64
	PriceSession5    int64
	PriceSession10   int64
	PriceSession20   int64
	ConsultationNote string
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Name:             "Hot Stone Massage",
		Description:      "Full body massage with heated stones",
		Category:         "Massage",
		Kind:             "single",
		PriceOriginal:    500_000,
		DiscountPercent:  20,
		Price5For5:       2_000_000,
		Price10For15:     3_500_000,
		ConsultationNote: "Check for skin sensitivity before the first session",
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}

func (s *ServiceBuilder) WithCategory(category string) *ServiceBuilder {
	s.Category = category
	return s
}

func (s *ServiceBuilder) WithOriginal(price int64) *ServiceBuilder {
	s.PriceOriginal = price
	return s
}

func (s *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	kind, err := catalog.NewKind(s.Kind)
	if err != nil {
		return nil, err
	}
	prices, err := catalog.NewTierPrices(s.PriceOriginal, s.DiscountPercent)
	if err != nil {
		return nil, err
	}
	prices = prices.WithPackages(s.Price5For5, s.Price10For15, s.PriceSession5, s.PriceSession10, s.PriceSession20)
	return catalog.NewService(s.Name, s.Description, s.Category, kind, prices, s.ConsultationNote)
}

func (s *ServiceBuilder) BuildRecord() (shared.ServiceRecord, error) {
	svc, err := s.BuildDomain()
	if err != nil {
		return shared.ServiceRecord{}, err
	}
	rec := shared.ServiceToRecord(svc)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return rec, nil
}
