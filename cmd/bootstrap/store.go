package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"spa-promotions/internal/infra/memstore"
	"spa-promotions/internal/infra/pgstore"
	"spa-promotions/internal/pkg/config"
	"spa-promotions/internal/usecase/shared"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles the per-collection ports. Every collection comes from the
// same driver; mixing drivers across collections is not supported.
type Stores struct {
	fx.Out

	Users      shared.UserStore
	Services   shared.ServiceStore
	Promotions shared.PromotionStore
	Registry   shared.RegistryStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	switch cfg.Store.Driver {
	case "memory":
		return Stores{
			Users:      memstore.NewCollection[shared.UserRecord](),
			Services:   memstore.NewCollection[shared.ServiceRecord](),
			Promotions: memstore.NewCollection[shared.PromotionRecord](),
			Registry:   memstore.NewCollection[shared.RegistryRecord](),
		}, nil

	case "postgres":
		st, err := pgstore.New(context.Background(), cfg.Store.BuildDSN())
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				st.Close()
				return nil
			},
		})
		return Stores{
			Users:      pgstore.NewCollection[shared.UserRecord](st, pgstore.TableUsers),
			Services:   pgstore.NewCollection[shared.ServiceRecord](st, pgstore.TableServices),
			Promotions: pgstore.NewCollection[shared.PromotionRecord](st, pgstore.TablePromotions),
			Registry:   pgstore.NewCollection[shared.RegistryRecord](st, pgstore.TableRegistry),
		}, nil

	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
