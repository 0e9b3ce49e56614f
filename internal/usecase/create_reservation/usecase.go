package create_reservation

import (
	"context"
	"fmt"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// UseCase use case создания бронирования: ядро двухшагового мастера.
// Первый шаг проверяется отдельно через ValidateCustomerInfo, финальная
// отправка проходит обе проверки заново - клиентскому состоянию мастера
// сервис не доверяет.
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         ProductCatalog
	idGen           IDGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog ProductCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		idGen:           &TimestampIDGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ValidateCustomerInfo проверяет первый шаг мастера.
// Ошибка валидации не меняет состояние и не блокирует повторную попытку.
func (uc *UseCase) ValidateCustomerInfo(info CustomerInfo) error {
	if err := validateCustomerInfo(info); err != nil {
		uc.logger.Warn("CreateReservation: customer info validation failed: %v", err)
		return err
	}
	return nil
}

// Execute выполняет финальную отправку мастера: валидирует оба шага,
// резолвит предзаказ по каталогу, считает итоговую сумму и сохраняет
// бронирование в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%q, time=%s, participants=%d",
		req.Customer.Name, req.Details.SelectedTime, req.Details.Participants)

	// 1. Повторная валидация первого шага
	if err := validateCustomerInfo(req.Customer); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация второго шага
	selectedTime, participants, err := validateDetails(req.Details)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 3. Резолвим предзаказ по каталогу: позиции с нулевым количеством
	// отбрасываются целиком, имена и цены берутся из каталога
	dishes, err := uc.resolveDishes(ctx, req.Details.Dishes)
	if err != nil {
		return nil, err
	}

	// 4. Итоговая сумма фиксируется один раз при создании
	totalAmount := domain.DishesTotal(dishes)

	reservation := domain.Reservation{
		ID:           uc.idGen.NextID(),
		CustomerName: req.Customer.Name,
		Phone:        req.Customer.Phone,
		Email:        req.Customer.Email,
		Time:         selectedTime,
		Participants: participants,
		Dishes:       dishes,
		Status:       domain.StatusPending,
		IsPriority:   false,
		TotalAmount:  totalAmount,
		CreatedAt:    uc.timeProvider.Now(),
	}

	// 5. Новые бронирования добавляются в начало коллекции
	if err := uc.reservationRepo.Add(ctx, reservation); err != nil {
		uc.logger.Error("CreateReservation: failed to store reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to store reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, total=%.2f, dishes=%d",
		reservation.ID, reservation.TotalAmount, len(reservation.Dishes))

	return &Response{
		ID:           reservation.ID,
		CustomerName: reservation.CustomerName,
		Phone:        reservation.Phone,
		Email:        reservation.Email,
		Time:         reservation.Time.String(),
		Participants: reservation.Participants,
		Dishes:       reservation.Dishes,
		Status:       string(reservation.Status),
		IsPriority:   reservation.IsPriority,
		TotalAmount:  reservation.TotalAmount,
		CreatedAt:    reservation.CreatedAt,
	}, nil
}

// resolveDishes превращает выбор формы (id -> количество) в строки предзаказа.
// Порядок строк следует порядку каталога, поэтому результат детерминирован.
func (uc *UseCase) resolveDishes(ctx context.Context, selection map[string]int) ([]domain.Dish, error) {
	dishes := make([]domain.Dish, 0, len(selection))
	if len(selection) == 0 {
		return dishes, nil
	}

	catalog, err := uc.catalog.List(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load product catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load product catalog: %v", ErrInternal, err)
	}

	matched := 0
	for _, product := range catalog {
		quantity, ok := selection[product.ID]
		if !ok {
			continue
		}
		matched++

		// Нулевое (или отрицательное) количество означает снятие позиции
		if quantity <= 0 {
			continue
		}

		dishes = append(dishes, domain.Dish{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: quantity,
			Price:    product.Price,
		})
	}

	if matched != len(selection) {
		uc.logger.Warn("CreateReservation: selection references %d unknown products", len(selection)-matched)
		return nil, fmt.Errorf("%w: unknown dish in selection", ErrValidation)
	}

	return dishes, nil
}
