package queries

import (
	"context"
	"sort"
	"time"

	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

type ServiceView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category"`
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
	UpdatedAt        time.Time `json:"updated_at"`
}

type CategoryGroupView struct {
	Category string        `json:"category"`
	Services []ServiceView `json:"services"`
}

type CatalogQueries interface {
	// Grouped returns the catalog partitioned by category label,
	// categories sorted lexicographically with Uncategorized last.
	Grouped(ctx context.Context, actor policy.Actor) ([]CategoryGroupView, error)
	ServiceByID(ctx context.Context, id string, actor policy.Actor) (*ServiceView, error)
	// Categories merges the registry's labels with every label currently
	// in use on a service.
	Categories(ctx context.Context, actor policy.Actor) ([]string, error)
}

type catalogQueriesImpl struct {
	services shared.ServiceStore
	registry shared.RegistryStore
}

func NewCatalogQueries(services shared.ServiceStore, registry shared.RegistryStore) CatalogQueries {
	return &catalogQueriesImpl{services: services, registry: registry}
}

func (q *catalogQueriesImpl) Grouped(ctx context.Context, actor policy.Actor) ([]CategoryGroupView, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}
	recs, err := q.services.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	domainServices := make([]*catalog.Service, 0, len(recs))
	views := make(map[string]ServiceView, len(recs))
	for _, rec := range recs {
		svc, err := shared.ServiceFromRecord(rec)
		if err != nil {
			continue
		}
		domainServices = append(domainServices, svc)
		views[rec.ID] = serviceView(rec)
	}

	groups := catalog.GroupByCategory(domainServices)
	out := make([]CategoryGroupView, len(groups))
	for i, g := range groups {
		gv := CategoryGroupView{Category: g.Category, Services: make([]ServiceView, len(g.Services))}
		for j, svc := range g.Services {
			gv.Services[j] = views[svc.ID()]
		}
		out[i] = gv
	}
	return out, nil
}

func (q *catalogQueriesImpl) ServiceByID(ctx context.Context, id string, actor policy.Actor) (*ServiceView, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}
	rec, err := q.services.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	view := serviceView(rec)
	return &view, nil
}

func (q *catalogQueriesImpl) Categories(ctx context.Context, actor policy.Actor) ([]string, error) {
	if !policy.CanView(actor) {
		return nil, errs.Mark(errs.New("unknown role"), errs.ErrForbidden)
	}

	seen := map[string]bool{}
	if reg, err := q.registry.Get(ctx, shared.CategoryRegistryID); err == nil {
		for _, label := range reg.Labels {
			seen[label] = true
		}
	}
	recs, err := q.services.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	for _, rec := range recs {
		if rec.Category != "" {
			seen[rec.Category] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

func serviceView(rec shared.ServiceRecord) ServiceView {
	category := rec.Category
	if category == "" {
		category = catalog.Uncategorized
	}
	return ServiceView{
		ID:               rec.ID,
		Name:             rec.Name,
		Description:      rec.Description,
		Category:         category,
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
		UpdatedAt:        rec.UpdatedAt,
	}
}
