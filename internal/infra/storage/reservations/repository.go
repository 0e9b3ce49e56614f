package reservations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// Repository репозиторий бронирований поверх blob-хранилища.
// Все операции выполняются по схеме read-modify-write всей коллекции:
// построчных обновлений нет, координации конкурентных писателей нет
// (сервис рассчитан на одного администратора).
type Repository struct {
	store  Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store Store, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// List возвращает все бронирования в порядке добавления: новые первыми
func (r *Repository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.load(ctx)
}

// GetByID возвращает бронирование по идентификатору.
// Производная операция поверх List: отдельного построчного чтения в хранилище нет.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			res := list[i]
			return &res, nil
		}
	}
	return nil, ErrReservationNotFound
}

// Add добавляет бронирование в начало коллекции
func (r *Repository) Add(ctx context.Context, reservation domain.Reservation) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.Reservation, 0, len(list)+1)
	updated = append(updated, reservation)
	updated = append(updated, list...)

	return r.save(ctx, updated)
}

// UpdateStatus заменяет статус бронирования, не трогая остальные поля.
// Возвращает ErrReservationNotFound, если id отсутствует в коллекции;
// коллекция при этом не перезаписывается.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			found = true
			break
		}
	}

	if !found {
		return ErrReservationNotFound
	}

	return r.save(ctx, list)
}

// Remove удаляет бронирование из коллекции.
// Возвращает ErrReservationNotFound, если id отсутствует;
// коллекция при этом не перезаписывается.
func (r *Repository) Remove(ctx context.Context, id string) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.Reservation, 0, len(list))
	for i := range list {
		if list[i].ID != id {
			updated = append(updated, list[i])
		}
	}

	if len(updated) == len(list) {
		return ErrReservationNotFound
	}

	return r.save(ctx, updated)
}

// load читает коллекцию целиком.
// Отсутствующий или нечитаемый blob трактуется как пустая коллекция,
// ошибка самого хранилища - как фатальная для операции.
func (r *Repository) load(ctx context.Context) ([]domain.Reservation, error) {
	data, err := r.store.Load(ctx, domain.NamespaceReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %v", ErrPersistence, err)
	}

	if len(data) == 0 {
		return []domain.Reservation{}, nil
	}

	var list []domain.Reservation
	if err := json.Unmarshal(data, &list); err != nil {
		r.logger.Warn("reservations.repository: corrupt %s blob, treating as empty: %v",
			domain.NamespaceReservations, err)
		return []domain.Reservation{}, nil
	}
	return list, nil
}

func (r *Repository) save(ctx context.Context, list []domain.Reservation) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := r.store.Save(ctx, domain.NamespaceReservations, data); err != nil {
		return fmt.Errorf("%w: save: %v", ErrPersistence, err)
	}
	return nil
}
