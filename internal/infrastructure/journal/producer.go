package journal

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события завершённых продаж в Kafka. Журнал —
// best-effort: терминал продолжает работу при любом сбое публикации.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// saleEventModel — JSON-представление события продажи в топике.
type saleEventModel struct {
	EventID    string               `json:"event_id"`
	OrderID    int64                `json:"order_id"`
	Items      []saleEventItemModel `json:"items"`
	GrandTotal string               `json:"grand_total"`
	OccurredAt int64                `json:"occurred_at"` // unix nanos
}

type saleEventItemModel struct {
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	TaxExempt bool   `json:"tax_exempt"`
}

// PublishSale сериализует событие продажи и пишет его в топик.
// Ключ сообщения — идентификатор заказа, чтобы события одного заказа
// попадали в одну партицию.
func (p *Producer) PublishSale(ctx context.Context, req *usecase.SaleEventReq) error {
	items := make([]saleEventItemModel, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, saleEventItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			TaxExempt: item.TaxExempt,
		})
	}

	event := saleEventModel{
		EventID:    req.EventID,
		OrderID:    req.OrderID,
		Items:      items,
		GrandTotal: req.GrandTotal.String(),
		OccurredAt: req.OccurredAt.UnixNano(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(req.OrderID, 10)),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
