package e

import "fmt"

var (
	// Ошибки валидации входных данных корзины
	ErrInvalidQuantity = fmt.Errorf("quantity must be positive")
	ErrInvalidPrice    = fmt.Errorf("price must be positive")

	// Ошибки состояния корзины
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrLineNotFound      = fmt.Errorf("cart line not found")
	ErrEmptyCart         = fmt.Errorf("cart is empty")

	// Ошибки каталога
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrProductSKURequired  = fmt.Errorf("product sku is required")
	ErrNegativePrice       = fmt.Errorf("price must not be negative")
	ErrNegativeStock       = fmt.Errorf("stock quantity must not be negative")

	// Ошибки поиска товара
	ErrNoActiveLookup = fmt.Errorf("no product selected in lookup")

	// Ошибки кэша снапшота каталога
	ErrSnapshotMiss = fmt.Errorf("catalog snapshot missing")

	// Ошибки взаимодействия с бэкендом
	ErrBackendStatus      = fmt.Errorf("backend returned non-2xx status")
	ErrBackendUnavailable = fmt.Errorf("backend is unavailable")
	ErrMalformedResponse  = fmt.Errorf("malformed backend response")

	// Общие HTTP-ошибки
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
