package shared

import (
	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/domain/user"
)

func UserToRecord(u *user.User) UserRecord {
	return UserRecord{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserFromRecord(r UserRecord) (*user.User, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(r.ID, name, email, r.PasswordHash, role, r.IsActive, r.CreatedAt, r.UpdatedAt), nil
}

func ServiceToRecord(s *catalog.Service) ServiceRecord {
	p := s.Prices()
	return ServiceRecord{
		ID:               s.ID(),
		Name:             s.Name(),
		Description:      s.Description(),
		Category:         s.RawCategory(),
		Kind:             s.Kind().String(),
		PriceOriginal:    p.Original(),
		DiscountPercent:  p.DiscountPercent(),
		PricePromo:       p.Promo(),
		Price5For5:       p.FiveForFive(),
		Price10For15:     p.TenForFifteen(),
		PriceSession5:    p.Session5(),
		PriceSession10:   p.Session10(),
		PriceSession20:   p.Session20(),
		ConsultationNote: s.ConsultationNote(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func ServiceFromRecord(r ServiceRecord) (*catalog.Service, error) {
	kind, err := catalog.NewKind(r.Kind)
	if err != nil {
		return nil, err
	}
	prices := catalog.ReconstructTierPrices(
		r.PriceOriginal, r.DiscountPercent, r.PricePromo,
		r.Price5For5, r.Price10For15,
		r.PriceSession5, r.PriceSession10, r.PriceSession20,
	)
	return catalog.ReconstructService(r.ID, r.Name, r.Description, r.Category, kind, prices, r.ConsultationNote, r.CreatedAt, r.UpdatedAt), nil
}

func PromotionToRecord(p *promotion.Promotion) PromotionRecord {
	return PromotionRecord{
		ID:               p.ID(),
		Name:             p.Name(),
		StartDate:        p.StartDate(),
		EndDate:          p.EndDate(),
		Status:           p.Status().String(),
		Services:         p.Services(),
		ProposerID:       p.ProposerID(),
		SalesNotes:       p.SalesNotes(),
		MarketingNotes:   p.MarketingNotes(),
		ManagementNotes:  p.ManagementNotes(),
		DesignURL:        p.DesignURL(),
		ConsultationMode: string(p.Consultation().Mode()),
		ConsultationText: p.Consultation().Text(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func PromotionFromRecord(r PromotionRecord) (*promotion.Promotion, error) {
	status, err := promotion.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	consultation := promotion.ReconstructConsultation(promotion.ConsultationMode(r.ConsultationMode), r.ConsultationText)
	return promotion.Reconstruct(
		r.ID, r.Name,
		r.StartDate, r.EndDate,
		status,
		r.Services,
		r.ProposerID, r.SalesNotes, r.MarketingNotes, r.ManagementNotes, r.DesignURL,
		consultation,
		r.CreatedAt, r.UpdatedAt,
	), nil
}
