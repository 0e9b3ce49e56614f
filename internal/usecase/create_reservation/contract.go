package create_reservation

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Add(ctx context.Context, reservation domain.Reservation) error
}

// ProductCatalog интерфейс каталога продуктов для резолва предзаказа
type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// IDGenerator интерфейс генерации идентификаторов бронирований
type IDGenerator interface {
	NextID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// TimestampIDGenerator генерирует идентификаторы из времени создания
// (миллисекунды Unix). Монотонный сдвиг исключает коллизии в пределах
// сессии даже при двух созданиях в одну миллисекунду.
type TimestampIDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NextID возвращает уникальный в пределах процесса идентификатор
func (g *TimestampIDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now

	return strconv.FormatInt(now, 10)
}
