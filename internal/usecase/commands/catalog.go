package commands

import (
	"context"
	"fmt"
	"strings"

	"spa-promotions/internal/domain/catalog"
	"spa-promotions/internal/domain/policy"
	"spa-promotions/internal/pkg/clock"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/pkg/patch"
	"spa-promotions/internal/usecase/shared"
)

type CreateServiceRequest struct {
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

// UpdateServiceRequest is a partial update; nil means keep the stored
// value. PricePromo set together with PriceOriginal or DiscountPercent
// still wins, manual promo edits are last-writer.
type UpdateServiceRequest struct {
	Name             *string
	Description      *string
	Category         *string
	PriceOriginal    *int64
	DiscountPercent  *float64
	PricePromo       *int64
	Price5For5       *int64
	Price10For15     *int64
	PriceSession5    *int64
	PriceSession10   *int64
	PriceSession20   *int64
	ConsultationNote *string
}

// CategoryRenameError reports a rename that moved some services but not
// all. Renamed and Failed hold service ids; the store state is whatever
// the per-record writes left behind.
type CategoryRenameError struct {
	Renamed []string
	Failed  []string
}

func (e *CategoryRenameError) Error() string {
	return fmt.Sprintf("category rename incomplete: %d renamed, %d failed", len(e.Renamed), len(e.Failed))
}

type CatalogCommands interface {
	CreateService(ctx context.Context, req CreateServiceRequest, actor policy.Actor) (*shared.ServiceRecord, error)
	UpdateService(ctx context.Context, id string, req UpdateServiceRequest, actor policy.Actor) (*shared.ServiceRecord, error)
	DeleteService(ctx context.Context, id string, actor policy.Actor) error
	AddCategory(ctx context.Context, label string, actor policy.Actor) error
	RenameCategory(ctx context.Context, from, to string, actor policy.Actor) ([]string, error)
}

type catalogCommandsImpl struct {
	services shared.ServiceStore
	registry shared.RegistryStore
	clock    clock.Clock
}

func NewCatalogCommands(services shared.ServiceStore, registry shared.RegistryStore, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{services: services, registry: registry, clock: clk}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, req CreateServiceRequest, actor policy.Actor) (*shared.ServiceRecord, error) {
	if !policy.CanManageCatalog(actor) {
		return nil, errs.Mark(errs.New("role may not manage the catalog"), errs.ErrForbidden)
	}

	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	prices, err := catalog.NewTierPrices(req.PriceOriginal, req.DiscountPercent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}
	prices = prices.WithPackages(req.Price5For5, req.Price10For15, req.PriceSession5, req.PriceSession10, req.PriceSession20)

	svc, err := catalog.NewService(req.Name, req.Description, req.Category, kind, prices, req.ConsultationNote)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOperation)
	}

	rec := shared.ServiceToRecord(svc)
	now := c.clock.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := c.services.Create(ctx, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id string, req UpdateServiceRequest, actor policy.Actor) (*shared.ServiceRecord, error) {
	if !policy.CanManageCatalog(actor) {
		return nil, errs.Mark(errs.New("role may not manage the catalog"), errs.ErrForbidden)
	}

	stored, err := c.services.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotFound)
	}
	svc, err := shared.ServiceFromRecord(stored)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt service record")
	}

	if req.Name != nil {
		if err := svc.Rename(*req.Name); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidOperation)
		}
	}
	svc.SetDescription(patch.Coalesce(req.Description, svc.Description()))
	svc.SetCategory(patch.Coalesce(req.Category, svc.RawCategory()))
	svc.SetConsultationNote(patch.Coalesce(req.ConsultationNote, svc.ConsultationNote()))

	prices := svc.Prices()
	if req.PriceOriginal != nil {
		if *req.PriceOriginal < 0 {
			return nil, errs.Mark(catalog.ErrNegativePrice, errs.ErrInvalidOperation)
		}
		prices = prices.WithOriginal(*req.PriceOriginal)
	}
	if req.DiscountPercent != nil {
		prices = prices.WithDiscountPercent(*req.DiscountPercent)
	}
	// Manual promo price applied last so it survives re-derivation from
	// original or percent changes in the same request.
	if req.PricePromo != nil {
		prices = prices.WithPromo(*req.PricePromo)
	}
	prices = prices.WithPackages(
		patch.Coalesce(req.Price5For5, prices.FiveForFive()),
		patch.Coalesce(req.Price10For15, prices.TenForFifteen()),
		patch.Coalesce(req.PriceSession5, prices.Session5()),
		patch.Coalesce(req.PriceSession10, prices.Session10()),
		patch.Coalesce(req.PriceSession20, prices.Session20()),
	)
	svc.SetPrices(prices)

	rec := shared.ServiceToRecord(svc)
	rec.UpdatedAt = c.clock.Now()
	if err := c.services.Update(ctx, id, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return &rec, nil
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id string, actor policy.Actor) error {
	if !policy.CanManageCatalog(actor) {
		return errs.Mark(errs.New("role may not manage the catalog"), errs.ErrForbidden)
	}
	if err := c.services.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func (c *catalogCommandsImpl) AddCategory(ctx context.Context, label string, actor policy.Actor) error {
	if !policy.CanManageCatalog(actor) {
		return errs.Mark(errs.New("role may not manage the catalog"), errs.ErrForbidden)
	}
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, catalog.Uncategorized) {
		return errs.Mark(errs.New("invalid category label"), errs.ErrInvalidOperation)
	}

	reg, err := c.loadRegistry(ctx)
	if err != nil {
		return err
	}
	if !reg.Add(label) {
		return errs.Mark(errs.New("category already exists"), errs.ErrInvalidOperation)
	}
	return c.saveRegistry(ctx, reg)
}

// RenameCategory rewrites the category on every service carrying the old
// label, one record at a time. The store has no transactions, so a failure
// partway through leaves a mixed state; the returned CategoryRenameError
// names exactly which services moved and which did not so the caller can
// retry the remainder.
func (c *catalogCommandsImpl) RenameCategory(ctx context.Context, from, to string, actor policy.Actor) ([]string, error) {
	if !policy.CanManageCatalog(actor) {
		return nil, errs.Mark(errs.New("role may not manage the catalog"), errs.ErrForbidden)
	}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" || from == to {
		return nil, errs.Mark(errs.New("invalid rename labels"), errs.ErrInvalidOperation)
	}

	all, err := c.services.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	var renamed, failed []string
	now := c.clock.Now()
	for _, rec := range all {
		if rec.Category != from {
			continue
		}
		rec.Category = to
		rec.UpdatedAt = now
		if err := c.services.Update(ctx, rec.ID, rec); err != nil {
			failed = append(failed, rec.ID)
			continue
		}
		renamed = append(renamed, rec.ID)
	}

	// Registry label follows the services; a partial failure keeps the old
	// label listed so the leftover services stay reachable.
	if len(failed) == 0 {
		if reg, err := c.loadRegistry(ctx); err == nil {
			if reg.Rename(from, to) {
				_ = c.saveRegistry(ctx, reg)
			}
		}
	}

	if len(failed) > 0 {
		return renamed, errs.Mark(&CategoryRenameError{Renamed: renamed, Failed: failed}, errs.ErrStoreUnavailable)
	}
	return renamed, nil
}

func (c *catalogCommandsImpl) loadRegistry(ctx context.Context) (*catalog.CategoryRegistry, error) {
	rec, err := c.registry.Get(ctx, shared.CategoryRegistryID)
	if err != nil {
		// First write creates the singleton document.
		return catalog.NewCategoryRegistry(), nil
	}
	return catalog.NewCategoryRegistry(rec.Labels...), nil
}

func (c *catalogCommandsImpl) saveRegistry(ctx context.Context, reg *catalog.CategoryRegistry) error {
	rec := shared.RegistryRecord{
		ID:        shared.CategoryRegistryID,
		Labels:    reg.Labels(),
		UpdatedAt: c.clock.Now(),
	}
	if err := c.registry.Update(ctx, rec.ID, rec); err != nil {
		if err := c.registry.Create(ctx, rec); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}
	return nil
}
