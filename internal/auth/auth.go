package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается при невалидном или истекшем сессионном токене
	ErrInvalidToken = errors.New("auth: invalid session token")
)

// Credentials пара логин/пароль из формы входа
type Credentials struct {
	Username string
	Password string
}

// Session выданная административная сессия
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Authenticator подключаемый источник учетных данных.
// Дашборд не привязан к конкретной реализации: статические учетные данные
// из конфига можно заменить любым другим источником.
type Authenticator interface {
	Authenticate(creds Credentials) (Session, error)
}

// StaticAuthenticator сверяет учетные данные с парой из конфигурации
// и выдает подписанный HS256 сессионный токен
type StaticAuthenticator struct {
	username string
	password string
	secret   string
	ttl      time.Duration
}

// NewStaticAuthenticator создает аутентификатор со статическими учетными данными
func NewStaticAuthenticator(username, password, secret string, ttlMinutes int) *StaticAuthenticator {
	return &StaticAuthenticator{
		username: username,
		password: password,
		secret:   secret,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
	}
}

// Authenticate проверяет учетные данные и выдает сессию
func (a *StaticAuthenticator) Authenticate(creds Credentials) (Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return Session{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	exp := now.Add(a.ttl)

	claims := jwt.MapClaims{
		"sub":  creds.Username,
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return Session{}, fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return Session{Token: signed, ExpiresAt: exp}, nil
}

// VerifyToken проверяет подпись и срок действия сессионного токена
// и возвращает subject
func VerifyToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
