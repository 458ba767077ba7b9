package http

import (
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

type CartHandler struct {
	cartUsecase   usecase.CartUC
	lookupUsecase usecase.LookupUC
	logger        logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, lookupUsecase usecase.LookupUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, lookupUsecase: lookupUsecase, logger: logger}
}

// view отдаёт позиции корзины со свежепосчитанными итогами.
func (h *CartHandler) view(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCartResponse(h.cartUsecase.View()))
}

// addItem добавляет товар (кнопка "Add to cart" у строки каталога).
// Отсутствующее количество трактуется как 1.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.cartUsecase.AddOrIncrement(&usecase.AddItemReq{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PriceOverride: req.Price,
	})
	if err != nil {
		h.logger.Warnf("add item failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.view(w, r)
}

// scanAdd — одношаговое добавление по считанному SKU.
func (h *CartHandler) scanAdd(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.lookupUsecase.ScanAdd(r.Context(), req.SKU); err != nil {
		h.logger.Warnf("scan add failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.view(w, r)
}

// increment увеличивает количество позиции на единицу с перепроверкой остатка.
func (h *CartHandler) increment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.Increment(id); err != nil {
		h.logger.Warnf("increment product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	h.view(w, r)
}

// decrement уменьшает количество позиции на единицу (нижняя граница 1).
func (h *CartHandler) decrement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.Decrement(id); err != nil {
		WriteError(w, err)
		return
	}

	h.view(w, r)
}

// removeItem убирает позицию из корзины.
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	h.cartUsecase.Remove(id)
	h.view(w, r)
}

// clear опустошает корзину ("New Sale" / "Void").
func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.cartUsecase.Clear()
	h.view(w, r)
}
