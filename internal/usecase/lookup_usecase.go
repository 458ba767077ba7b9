package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

// LookupUseCase — машина состояний диалога "поиск → предпросмотр → коммит".
// Поиск сначала обращается к авторитетному SKU-эндпоинту бэкенда; при
// промахе (и при не-2xx ответах) выполняется резервный подстрочный поиск
// по локальному снапшоту каталога, чтобы частичный или неточный ввод
// оператора всё равно находил товар.
type LookupUseCase struct {
	mu       sync.Mutex
	state    LookupState
	product  *domain.Product
	quantity int64

	productRepo ProductRepository
	catalog     CatalogReader
	cart        CartAdder
	logger      logger.Logger
}

func NewLookupUC(productRepo ProductRepository, catalog CatalogReader, cart CartAdder, logger logger.Logger) *LookupUseCase {
	return &LookupUseCase{
		state:       LookupIdle,
		productRepo: productRepo,
		catalog:     catalog,
		cart:        cart,
		logger:      logger,
	}
}

// Search выполняет поиск по SKU или имени. Успех переводит машину в found
// с количеством по умолчанию 1; промах — в not_found с ошибкой
// e.ErrProductNotFound. Транспортный сбой возвращает машину в idle.
func (l *LookupUseCase) Search(ctx context.Context, term string) (*LookupView, error) {
	const op = "LookupUseCase.Search"

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = LookupSearching
	l.product = nil
	l.quantity = 1

	product, err := l.resolve(ctx, term)
	switch {
	case err == nil:
		l.state = LookupFound
		l.product = product
		return l.view(), nil
	case errors.Is(err, e.ErrProductNotFound):
		l.state = LookupNotFound
		return l.view(), e.Wrap(op, err)
	default:
		l.state = LookupIdle
		return nil, e.Wrap(op, err)
	}
}

// Current возвращает наблюдаемое состояние диалога.
func (l *LookupUseCase) Current() *LookupView {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.view()
}

// Commit подтверждает найденный товар: запрошенное количество прибавляется
// к уже лежащему в корзине и проверяется против текущего остатка единой
// операцией корзины. Успех закрывает диалог (idle); отказ по валидации или
// остатку оставляет машину в found, чтобы оператор поправил ввод.
func (l *LookupUseCase) Commit(req *CommitLookupReq) error {
	const op = "LookupUseCase.Commit"

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != LookupFound || l.product == nil {
		return e.Wrap(op, e.ErrNoActiveLookup)
	}

	err := l.cart.AddOrIncrement(&AddItemReq{
		ProductID:     l.product.ID,
		Quantity:      req.Quantity,
		PriceOverride: req.PriceOverride,
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	l.reset()
	return nil
}

// Cancel отменяет диалог из любого состояния, отбрасывая все
// промежуточные поля без побочных эффектов.
func (l *LookupUseCase) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reset()
}

// ScanAdd — одношаговое добавление по считанному SKU: поиск и немедленный
// коммит одной единицы по каталожной цене, минуя диалог.
func (l *LookupUseCase) ScanAdd(ctx context.Context, term string) error {
	const op = "LookupUseCase.ScanAdd"

	term = strings.TrimSpace(term)
	if term == "" {
		return e.Wrap(op, e.ErrStatusBadRequest)
	}

	product, err := l.resolve(ctx, term)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := l.cart.AddOrIncrement(&AddItemReq{ProductID: product.ID, Quantity: 1}); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// resolve ищет товар: точное совпадение SKU на бэкенде, затем резервный
// локальный поиск. Резерв срабатывает и на промахе, и на не-2xx ответе
// бэкенда; только транспортный сбой прерывает поиск.
func (l *LookupUseCase) resolve(ctx context.Context, term string) (*domain.Product, error) {
	product, err := l.productRepo.FindBySKU(ctx, term)
	if err == nil {
		return product, nil
	}

	if errors.Is(err, e.ErrProductNotFound) || errors.Is(err, e.ErrBackendStatus) {
		if errors.Is(err, e.ErrBackendStatus) {
			l.logger.Warnf("sku lookup degraded to local search: %v", err)
		}

		if local, ok := l.catalog.FindLocal(term); ok {
			return local, nil
		}
		return nil, e.ErrProductNotFound
	}

	return nil, err
}

// view формирует LookupView. Вызывается под l.mu.
func (l *LookupUseCase) view() *LookupView {
	return &LookupView{
		State:    l.state,
		Product:  l.product,
		Quantity: l.quantity,
	}
}

// reset возвращает машину в idle. Вызывается под l.mu.
func (l *LookupUseCase) reset() {
	l.state = LookupIdle
	l.product = nil
	l.quantity = 0
}
