package amqpsender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gourmethaven/reservation-service/internal/notifier"
)

var (
	// ErrDial возвращается при ошибке подключения к брокеру
	ErrDial = errors.New("amqpsender: failed to dial broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("amqpsender: failed to publish message")
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Sender публикует письма в durable очередь RabbitMQ, откуда их забирает
// внешний доставщик. Соединение устанавливается на каждую отправку:
// решения принимаются редко, держать постоянный канал незачем.
type Sender struct {
	url    string
	queue  string
	logger Logger
}

// New создает AMQP-отправителя
func New(url, queue string, logger Logger) *Sender {
	return &Sender{url: url, queue: queue, logger: logger}
}

// Send публикует письмо в очередь persistent-сообщением
func (s *Sender) Send(ctx context.Context, email notifier.Email) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		s.logger.Warn("amqpsender: dial failed: %v", err)
		return fmt.Errorf("%w: %v", ErrDial, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		s.logger.Warn("amqpsender: channel open failed: %v", err)
		return fmt.Errorf("%w: %v", ErrDial, err)
	}
	defer ch.Close()

	// Объявление идемпотентно; durable, чтобы письма переживали рестарт брокера
	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		s.logger.Warn("amqpsender: queue declare failed: %v", err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: marshal email: %v", ErrPublish, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", s.queue, false, false, pub); err != nil {
		s.logger.Warn("amqpsender: publish failed: %v", err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}
