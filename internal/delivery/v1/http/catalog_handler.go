package http

import (
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts отдаёт текущий снапшот каталога.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalogUsecase.Products()

	res := make([]productResponse, 0, len(products))
	for _, product := range products {
		res = append(res, toProductResponse(product))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// refresh перечитывает каталог с бэкенда по требованию оператора.
func (h *CatalogHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUsecase.Refresh(r.Context()); err != nil {
		h.logger.Warnf("catalog refresh failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.listProducts(w, r)
}

// createProduct регистрирует новый товар на бэкенде.
func (h *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.catalogUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:          req.Name,
		SKU:           req.SKU,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		TaxExempt:     req.TaxExempt,
	})
	if err != nil {
		h.logger.Warnf("create product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(*created))
}

// deleteProduct удаляет товар на бэкенде и из снапшота.
func (h *CatalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Warnf("delete product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
