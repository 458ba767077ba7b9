package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх REST-контракта бэкенда.
type ProductRepo struct {
	client *Client
}

func NewProductRepo(client *Client) *ProductRepo {
	return &ProductRepo{client: client}
}

// List возвращает весь каталог. GET /api/products
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	var models []productModel
	if err := r.client.getJSON(ctx, "/api/products", &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, m.toDomain())
	}

	return products, nil
}

// FindBySKU ищет товар по точному SKU. GET /api/products/sku/{sku}
// Промах (404) возвращается как e.ErrProductNotFound.
func (r *ProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var model productModel
	path := "/api/products/sku/" + url.PathEscape(sku)
	if err := r.client.getJSON(ctx, path, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := model.toDomain()
	return &product, nil
}

// Create регистрирует новый товар. POST /api/products
func (r *ProductRepo) Create(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	var model productModel
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/products", toCreateProductModel(req), "", &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := model.toDomain()
	return &product, nil
}

// Delete удаляет товар. DELETE /api/products/{id} (бэкенд отвечает 204 или 200)
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/products/%d", id)
	if err := r.client.doJSON(ctx, http.MethodDelete, path, nil, "", nil); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
