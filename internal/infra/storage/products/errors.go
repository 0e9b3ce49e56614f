package products

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("products.repository: product not found")

	// ErrPersistence возвращается при ошибке чтения или записи хранилища
	ErrPersistence = errors.New("products.repository: persistence failure")

	// ErrEncode возвращается при ошибке сериализации каталога
	ErrEncode = errors.New("products.repository: failed to encode catalog")
)
