package notifier

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

var (
	// ErrRender возвращается при ошибке рендеринга письма
	ErrRender = errors.New("notifier: failed to render email")

	// ErrNotADecision возвращается, если статус не является решением оператора
	ErrNotADecision = errors.New("notifier: status is not a decision")
)

const decisionEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1a1a1a;">{{if .Approved}}Reservation Confirmed!{{else}}Reservation Status Update{{end}}</h2>

  <p>Dear {{.Reservation.CustomerName}},</p>

  <p>Your reservation at {{.Info.Name}} has been {{.Decision}}.</p>

  <div style="background-color: #f8f8f8; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Reservation Details:</h3>
    <ul style="list-style: none; padding: 0;">
      <li>Date &amp; Time: {{.Reservation.Time}}</li>
      <li>Number of Guests: {{.Reservation.Participants}}</li>
      <li>Total Amount: &euro;{{printf "%.2f" .Reservation.TotalAmount}}</li>
    </ul>
    {{if .Reservation.HasDishes}}
    <h4>Pre-ordered Dishes:</h4>
    <ul>
      {{range .Reservation.Dishes}}<li>{{.Name}} x{{.Quantity}} - &euro;{{printf "%.2f" .LineTotal}}</li>
      {{end}}
    </ul>
    {{end}}
  </div>

  <div style="background-color: #f8f8f8; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Restaurant Location &amp; Contact:</h3>
    <p>{{.Info.Address}}</p>
    <p>Phone: {{.Info.Phone}}</p>
    <p>Email: {{.Info.Email}}</p>
    <a href="{{.Info.GoogleMapsURL}}" style="display: inline-block; background-color: #4285f4; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; margin-top: 10px;">View on Google Maps</a>
  </div>

  {{if .Approved}}<p>We look forward to serving you!</p>{{else}}<p>We apologize for any inconvenience. Please feel free to contact us for any questions or to make a new reservation.</p>{{end}}

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
    <p style="color: #666;">Best regards,<br>The {{.Info.Name}} Team</p>
  </div>
</div>`

// MessageBuilder собирает письма о решениях по броням
type MessageBuilder struct {
	info Info
	tmpl *template.Template
}

// NewMessageBuilder создает builder с контактным блоком ресторана
func NewMessageBuilder(info Info) *MessageBuilder {
	return &MessageBuilder{
		info: info,
		tmpl: template.Must(template.New("decision_email").Parse(decisionEmailTemplate)),
	}
}

// BuildDecisionEmail рендерит письмо о решении оператора по брони.
// Тема и заключительный абзац различаются для approved и rejected.
func (b *MessageBuilder) BuildDecisionEmail(reservation *domain.Reservation, decision domain.ReservationStatus) (Email, error) {
	if !decision.IsDecision() {
		return Email{}, fmt.Errorf("%w: %q", ErrNotADecision, decision)
	}

	approved := decision == domain.StatusApproved

	subject := fmt.Sprintf("Reservation Update - %s", b.info.Name)
	if approved {
		subject = fmt.Sprintf("Reservation Confirmed - %s", b.info.Name)
	}

	var buf bytes.Buffer
	err := b.tmpl.Execute(&buf, struct {
		Reservation *domain.Reservation
		Info        Info
		Decision    string
		Approved    bool
	}{
		Reservation: reservation,
		Info:        b.info,
		Decision:    string(decision),
		Approved:    approved,
	})
	if err != nil {
		return Email{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return Email{
		ReservationID: reservation.ID,
		Decision:      string(decision),
		To:            reservation.Email,
		Subject:       subject,
		HTML:          buf.String(),
	}, nil
}
