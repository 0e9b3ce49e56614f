package notifier

// Email структурированное уведомление для клиента.
// Рендерится один раз при принятии решения и передается в Sender;
// доставка полностью отделена от изменения статуса брони.
type Email struct {
	ReservationID string `json:"reservationId"`
	Decision      string `json:"decision"`
	To            string `json:"to"`
	Subject       string `json:"subject"`
	HTML          string `json:"html"`
}

// Info контактный блок ресторана, попадающий в каждое письмо
type Info struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	GoogleMapsURL string
}
