package logsender

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/notifier"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Sender симулирует доставку писем записью в лог.
// Реальной отправки почты в сервисе нет.
type Sender struct {
	logger Logger
}

// New создает лог-отправителя
func New(logger Logger) *Sender {
	return &Sender{logger: logger}
}

// Send "доставляет" письмо, логируя адресата, тему и содержимое
func (s *Sender) Send(ctx context.Context, email notifier.Email) error {
	s.logger.Info("notifier: sending email to %s, subject=%q", email.To, email.Subject)
	s.logger.Info("notifier: email content: %s", email.HTML)
	return nil
}
