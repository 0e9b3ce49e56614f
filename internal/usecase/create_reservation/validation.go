package create_reservation

import (
	"fmt"
	"strings"

	"github.com/gourmethaven/reservation-service/internal/domain"
	"github.com/gourmethaven/reservation-service/pkg/types"
)

// validateCustomerInfo валидирует первый шаг мастера:
// все три поля обязательны и не могут состоять из одних пробелов
func validateCustomerInfo(info CustomerInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(info.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(info.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}

// validateDetails валидирует второй шаг мастера и возвращает
// выбранное время и эффективное число гостей
func validateDetails(details Details) (types.TimeString, int, error) {
	if strings.TrimSpace(details.SelectedTime) == "" {
		return "", 0, fmt.Errorf("%w: time is required", ErrValidation)
	}

	selectedTime, err := types.NewTimeStringFromString(details.SelectedTime)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid time format: %v", ErrValidation, err)
	}

	if !domain.IsValidTimeSlot(selectedTime) {
		return "", 0, fmt.Errorf("%w: time %s is outside the service window", ErrValidation, selectedTime)
	}

	participants, err := effectiveParticipants(details)
	if err != nil {
		return "", 0, err
	}

	return selectedTime, participants, nil
}

// effectiveParticipants вычисляет итоговое число гостей.
// 1..16 берется как есть; сентинел 0 требует CustomParticipants >= 17.
func effectiveParticipants(details Details) (int, error) {
	if details.Participants == domain.CustomParticipantsSentinel {
		if details.CustomParticipants < domain.MinCustomParticipants {
			return 0, fmt.Errorf("%w: custom participant count must be at least %d",
				ErrValidation, domain.MinCustomParticipants)
		}
		return details.CustomParticipants, nil
	}

	if details.Participants < domain.MinParticipants || details.Participants > domain.MaxEnumeratedParticipants {
		return 0, fmt.Errorf("%w: participants must be between %d and %d",
			ErrValidation, domain.MinParticipants, domain.MaxEnumeratedParticipants)
	}

	return details.Participants, nil
}
