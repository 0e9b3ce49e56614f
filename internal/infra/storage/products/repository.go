package products

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// Repository репозиторий каталога продуктов поверх blob-хранилища.
// Тот же цикл read-modify-write всей коллекции, что и у бронирований.
type Repository struct {
	store  Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(store Store, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// List возвращает каталог продуктов.
// При первом обращении (namespace отсутствует) каталог засеивается
// дефолтным меню и сразу сохраняется.
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	data, err := r.store.Load(ctx, domain.NamespaceProducts)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %v", ErrPersistence, err)
	}

	if data == nil {
		menu := domain.DefaultMenu()
		if err := r.save(ctx, menu); err != nil {
			return nil, err
		}
		r.logger.Info("products.repository: seeded default menu with %d products", len(menu))
		return menu, nil
	}

	if len(data) == 0 {
		return []domain.Product{}, nil
	}

	var list []domain.Product
	if err := json.Unmarshal(data, &list); err != nil {
		r.logger.Warn("products.repository: corrupt %s blob, treating as empty: %v",
			domain.NamespaceProducts, err)
		return []domain.Product{}, nil
	}
	return list, nil
}

// AdjustQuantity изменяет остаток продукта на delta (итог не опускается ниже нуля)
// и возвращает обновленный продукт
func (r *Repository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Product, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}

		quantity := list[i].Quantity + delta
		if quantity < 0 {
			quantity = 0
		}
		list[i].Quantity = quantity

		if err := r.save(ctx, list); err != nil {
			return nil, err
		}

		updated := list[i]
		return &updated, nil
	}

	return nil, ErrProductNotFound
}

func (r *Repository) save(ctx context.Context, list []domain.Product) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := r.store.Save(ctx, domain.NamespaceProducts, data); err != nil {
		return fmt.Errorf("%w: save: %v", ErrPersistence, err)
	}
	return nil
}
