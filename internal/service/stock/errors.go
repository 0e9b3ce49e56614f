package stock

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("stock.service: product not found")

	// ErrInvalidAction возвращается при неизвестном действии над остатком
	ErrInvalidAction = errors.New("stock.service: invalid stock action")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("stock.service: internal error")
)
