package backend

import (
	"context"
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх REST-контракта бэкенда.
type OrderRepo struct {
	client *Client
}

func NewOrderRepo(client *Client) *OrderRepo {
	return &OrderRepo{client: client}
}

// Submit отправляет заказ. POST /api/orders
// Запрос выполняется строго один раз: повтор после неоднозначного сбоя
// мог бы создать второй заказ. RequestID уходит в заголовке X-Request-Id.
func (r *OrderRepo) Submit(ctx context.Context, req *usecase.SubmitOrderReq) (*domain.Order, error) {
	var model orderModel
	if err := r.client.doJSON(ctx, http.MethodPost, "/api/orders", toCreateOrderModel(req), req.RequestID, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := model.toDomain()
	return &order, nil
}

// List возвращает историю заказов. GET /api/orders
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var models []orderModel
	if err := r.client.getJSON(ctx, "/api/orders", &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orders := make([]domain.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, m.toDomain())
	}

	return orders, nil
}
