package http

import (
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// submit оплачивает текущую корзину. Любой сбой оставляет корзину
// нетронутой; оператор видит описание ошибки и может повторить оплату.
func (h *OrderHandler) submit(w http.ResponseWriter, r *http.Request) {
	res, err := h.orderUsecase.Submit(r.Context())
	if err != nil {
		h.logger.Warnf("order submit failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, submitOrderResponse{
		OrderID:    res.OrderID,
		GrandTotal: res.GrandTotal.StringFixed(2),
	})
}

// history отдаёт список заказов бэкенда.
func (h *OrderHandler) history(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.History(r.Context())
	if err != nil {
		h.logger.Warnf("order history failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, toOrderResponse(order))
	}

	WriteSuccess(w, http.StatusOK, res)
}
