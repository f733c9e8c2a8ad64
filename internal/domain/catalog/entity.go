package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uncategorized is the sentinel bucket for services without a category.
const Uncategorized = "Uncategorized"

// Service is a sellable offering in the catalog. Promotions never reference
// a Service directly; they embed a priced snapshot taken at proposal time,
// so later catalog edits and deletions have no effect on existing proposals.
type Service struct {
	id               string
	name             string
	description      string
	category         string
	kind             Kind
	prices           TierPrices
	consultationNote string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewService(name, description, category string, kind Kind, prices TierPrices, consultationNote string) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Service{
		id:               uuid.NewString(),
		name:             name,
		description:      description,
		category:         strings.TrimSpace(category),
		kind:             kind,
		prices:           prices,
		consultationNote: consultationNote,
	}, nil
}

func ReconstructService(id, name, description, category string, kind Kind, prices TierPrices, consultationNote string, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:               id,
		name:             name,
		description:      description,
		category:         category,
		kind:             kind,
		prices:           prices,
		consultationNote: consultationNote,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Service) ID() string               { return s.id }
func (s *Service) Name() string             { return s.name }
func (s *Service) Description() string      { return s.description }
func (s *Service) Kind() Kind               { return s.kind }
func (s *Service) Prices() TierPrices       { return s.prices }
func (s *Service) ConsultationNote() string { return s.consultationNote }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }

// Category returns the grouping label, or the Uncategorized sentinel when
// the service carries none.
func (s *Service) Category() string {
	if s.category == "" {
		return Uncategorized
	}
	return s.category
}

func (s *Service) RawCategory() string { return s.category }

func (s *Service) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.name = name
	return nil
}

func (s *Service) SetDescription(description string)  { s.description = description }
func (s *Service) SetCategory(category string)        { s.category = strings.TrimSpace(category) }
func (s *Service) SetConsultationNote(note string)    { s.consultationNote = note }
func (s *Service) SetPrices(prices TierPrices)        { s.prices = prices }
