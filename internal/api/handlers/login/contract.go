package login

import (
	"github.com/gourmethaven/reservation-service/internal/auth"
)

type Authenticator interface {
	Authenticate(creds auth.Credentials) (auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
