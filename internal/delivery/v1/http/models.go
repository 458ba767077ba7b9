package http

import (
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/shopspring/decimal"
)

// Презентационные модели терминального API. Все денежные суммы
// отдаются строками, округлёнными до 2 знаков; внутреннее накопление
// идёт без округления.

type productResponse struct {
	ID            int64  `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	StockQuantity int64  `json:"stockQuantity"`
	TaxExempt     bool   `json:"taxExempt"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Price:         p.Price.StringFixed(2),
		StockQuantity: p.StockQuantity,
		TaxExempt:     p.TaxExempt,
	}
}

type cartLineResponse struct {
	ProductID int64  `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	TaxExempt bool   `json:"taxExempt"`
	RowTotal  string `json:"rowTotal"`
}

type totalsResponse struct {
	NetTotal        string `json:"netTotal"`
	TaxableSubtotal string `json:"taxableSubtotal"`
	TaxAmount       string `json:"taxAmount"`
	GrandTotal      string `json:"grandTotal"`
}

type cartResponse struct {
	Lines  []cartLineResponse `json:"lines"`
	Totals totalsResponse     `json:"totals"`
}

func toCartResponse(view *usecase.CartView) cartResponse {
	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineResponse{
			ProductID: line.ProductID,
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			TaxExempt: line.TaxExempt,
			RowTotal:  line.RowTotal().StringFixed(2),
		})
	}

	return cartResponse{
		Lines: lines,
		Totals: totalsResponse{
			NetTotal:        view.Totals.NetTotal.StringFixed(2),
			TaxableSubtotal: view.Totals.TaxableSubtotal.StringFixed(2),
			TaxAmount:       view.Totals.TaxAmount.StringFixed(2),
			GrandTotal:      view.Totals.GrandTotal.StringFixed(2),
		},
	}
}

type lookupResponse struct {
	State    string           `json:"state"`
	Product  *productResponse `json:"product,omitempty"`
	Quantity int64            `json:"quantity,omitempty"`
}

func toLookupResponse(view *usecase.LookupView) lookupResponse {
	res := lookupResponse{
		State:    view.State.String(),
		Quantity: view.Quantity,
	}
	if view.Product != nil {
		p := toProductResponse(*view.Product)
		res.Product = &p
	}
	return res
}

type orderItemResponse struct {
	ProductID int64  `json:"productId"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	TaxExempt bool   `json:"taxExempt"`
}

type orderResponse struct {
	ID         int64               `json:"id"`
	CreatedAt  time.Time           `json:"createdAt"`
	Items      []orderItemResponse `json:"items"`
	NetTotal   string              `json:"netTotal"`
	TaxAmount  string              `json:"taxAmount"`
	GrandTotal string              `json:"grandTotal"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			TaxExempt: item.TaxExempt,
		})
	}

	return orderResponse{
		ID:         order.ID,
		CreatedAt:  order.CreatedAt,
		Items:      items,
		NetTotal:   order.NetTotal.StringFixed(2),
		TaxAmount:  order.TaxAmount.StringFixed(2),
		GrandTotal: order.GrandTotal.StringFixed(2),
	}
}

type submitOrderResponse struct {
	OrderID    int64  `json:"orderId"`
	GrandTotal string `json:"grandTotal"`
}

// Запросы терминального API. Цены принимаются и числом, и строкой
// (decimal.Decimal разбирает оба варианта).

type createProductRequest struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stockQuantity"`
	TaxExempt     bool            `json:"taxExempt"`
}

type addItemRequest struct {
	ProductID int64            `json:"productId"`
	Quantity  int64            `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type scanRequest struct {
	SKU string `json:"sku"`
}

type commitLookupRequest struct {
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}
