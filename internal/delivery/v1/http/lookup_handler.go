package http

import (
	"errors"
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

type LookupHandler struct {
	lookupUsecase usecase.LookupUC
	logger        logger.Logger
}

func NewLookupHandler(lookupUsecase usecase.LookupUC, logger logger.Logger) *LookupHandler {
	return &LookupHandler{lookupUsecase: lookupUsecase, logger: logger}
}

// current отдаёт наблюдаемое состояние диалога поиска.
func (h *LookupHandler) current(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toLookupResponse(h.lookupUsecase.Current()))
}

// search ищет товар по SKU или имени. Промах — не ошибка терминала:
// слой отображения получает состояние not_found со статусом 200 и сам
// решает, предлагать ли повтор.
func (h *LookupHandler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.lookupUsecase.Search(r.Context(), req.Term)
	if err != nil && !errors.Is(err, e.ErrProductNotFound) {
		h.logger.Warnf("lookup search failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toLookupResponse(view))
}

// commit подтверждает найденный товар с запрошенным количеством
// и необязательным переопределением цены.
func (h *LookupHandler) commit(w http.ResponseWriter, r *http.Request) {
	var req commitLookupRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.lookupUsecase.Commit(&usecase.CommitLookupReq{
		Quantity:      req.Quantity,
		PriceOverride: req.Price,
	})
	if err != nil {
		h.logger.Warnf("lookup commit failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toLookupResponse(h.lookupUsecase.Current()))
}

// cancel закрывает диалог, отбрасывая промежуточный ввод.
func (h *LookupHandler) cancel(w http.ResponseWriter, r *http.Request) {
	h.lookupUsecase.Cancel()
	WriteSuccess(w, http.StatusOK, toLookupResponse(h.lookupUsecase.Current()))
}
