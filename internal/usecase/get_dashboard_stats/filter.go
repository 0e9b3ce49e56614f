package get_dashboard_stats

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// filterByMonth возвращает бронирования, чье время попадает в целевой месяц.
//
// Бронирование хранит только время суток, поэтому дата восстанавливается
// как первое число целевого месяца: корректное время проходит фильтр
// ЛЮБОГО месяца. Это осознанно сохраненное поведение исходной системы
// (известный пробел модели данных, см. DESIGN.md), а не настоящий
// календарный фильтр.
//
// Некорректные записи (время не по маске HH:MM или не собирающееся
// в валидную дату) исключаются из выборки с диагностикой в лог,
// но остаются в общей коллекции.
func (uc *UseCase) filterByMonth(list []domain.Reservation, month string) []domain.Reservation {
	filtered := make([]domain.Reservation, 0, len(list))

	for _, reservation := range list {
		if !timePattern.MatchString(reservation.Time.String()) {
			uc.logger.Warn("DashboardStats: invalid time format for reservation id=%s: %q",
				reservation.ID, reservation.Time)
			continue
		}

		constructed, err := time.Parse(domain.DateTimeFormat,
			fmt.Sprintf("%s-01 %s", month, reservation.Time))
		if err != nil {
			uc.logger.Warn("DashboardStats: invalid date for reservation id=%s: %v",
				reservation.ID, err)
			continue
		}

		if constructed.Format(domain.MonthFormat) != month {
			continue
		}

		filtered = append(filtered, reservation)
	}

	return filtered
}
