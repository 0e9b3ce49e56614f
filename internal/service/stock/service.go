package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gourmethaven/reservation-service/internal/domain"
	productRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/products"
)

// Действия над остатком продукта
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Service сервис управления складом
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает каталог, опционально отфильтрованный подстрокой имени
// (без учета регистра)
func (s *Service) List(ctx context.Context, search string) ([]domain.Product, error) {
	list, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if search == "" {
		return list, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.Product, 0, len(list))
	for _, product := range list {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

// UpdateStock изменяет остаток продукта на единицу:
// add увеличивает, remove уменьшает (не ниже нуля)
func (s *Service) UpdateStock(ctx context.Context, id string, action string) (*domain.Product, error) {
	var delta int
	switch action {
	case ActionAdd:
		delta = 1
	case ActionRemove:
		delta = -1
	default:
		s.logger.Warn("UpdateStock: invalid action %q for product id=%s", action, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	product, err := s.productRepo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("UpdateStock: product id=%s not found", id)
			return nil, ErrProductNotFound
		}
		s.logger.Error("UpdateStock: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStock: product id=%s %s, stock=%d", id, action, product.Quantity)
	return product, nil
}
