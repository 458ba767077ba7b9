package backend

import (
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/shopspring/decimal"
)

// Wire-модели контракта бэкенда. Цены на проводе — JSON-числа
// (бэкенд хранит их как double); в доменные decimal они конвертируются
// сразу на границе.

type productModel struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Price         float64 `json:"price"`
	StockQuantity int64   `json:"stockQuantity"`
	TaxExempt     bool    `json:"taxExempt"`
}

type createProductModel struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Price         float64 `json:"price"`
	StockQuantity int64   `json:"stockQuantity"`
	TaxExempt     bool    `json:"taxExempt"`
}

type orderItemModel struct {
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	TaxExempt bool    `json:"taxExempt"`
}

type createOrderModel struct {
	Items []orderItemModel `json:"items"`
}

type orderModel struct {
	ID         int64            `json:"id"`
	CreatedAt  string           `json:"createdAt"`
	Items      []orderItemModel `json:"items"`
	NetTotal   float64          `json:"netTotal"`
	TaxAmount  float64          `json:"taxAmount"`
	GrandTotal float64          `json:"grandTotal"`
}

func (m productModel) toDomain() domain.Product {
	return domain.Product{
		ID:            m.ID,
		SKU:           m.SKU,
		Name:          m.Name,
		Price:         decimal.NewFromFloat(m.Price),
		StockQuantity: m.StockQuantity,
		TaxExempt:     m.TaxExempt,
	}
}

func toCreateProductModel(req *usecase.CreateProductReq) createProductModel {
	return createProductModel{
		Name:          req.Name,
		SKU:           req.SKU,
		Price:         req.Price.InexactFloat64(),
		StockQuantity: req.StockQuantity,
		TaxExempt:     req.TaxExempt,
	}
}

func toCreateOrderModel(req *usecase.SubmitOrderReq) createOrderModel {
	items := make([]orderItemModel, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			TaxExempt: item.TaxExempt,
		})
	}

	return createOrderModel{Items: items}
}

func (m orderModel) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
			TaxExempt: item.TaxExempt,
		})
	}

	return domain.Order{
		ID:         m.ID,
		CreatedAt:  parseBackendTime(m.CreatedAt),
		Items:      items,
		NetTotal:   decimal.NewFromFloat(m.NetTotal),
		TaxAmount:  decimal.NewFromFloat(m.TaxAmount),
		GrandTotal: decimal.NewFromFloat(m.GrandTotal),
	}
}

// parseBackendTime разбирает createdAt бэкенда. Бэкенд сериализует
// LocalDateTime без зоны; RFC3339 принимается на случай смены сериализации.
// Неразборчивое значение даёт нулевое время, а не ошибку: история заказов
// не должна ломаться из-за формата даты.
func parseBackendTime(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
