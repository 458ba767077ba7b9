package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/clients"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const snapshotKey = "pos:catalog:snapshot"

// SnapshotRepo хранит последний полностью загруженный снапшот каталога
// в Redis, чтобы терминал после рестарта мог показать каталог до первого
// успешного обращения к бэкенду. Снапшот пишется и читается целиком.
type SnapshotRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewSnapshotRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// productCacheModel — модель товара в кэше. Цена хранится строкой,
// чтобы не терять точность decimal при сериализации.
type productCacheModel struct {
	ID            int64  `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	StockQuantity int64  `json:"stock_quantity"`
	TaxExempt     bool   `json:"tax_exempt"`
}

// Load читает снапшот каталога. Возвращает e.ErrSnapshotMiss, если ключа нет.
func (s *SnapshotRepo) Load(ctx context.Context) ([]domain.Product, error) {
	data, err := s.client.Client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, e.ErrSnapshotMiss
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []productCacheModel
	if err := json.Unmarshal(data, &models); err != nil {
		// повреждённый снапшот равносилен его отсутствию
		s.logger.Warnf("corrupt catalog snapshot, dropping: %v", err)
		if delErr := s.client.Client.Del(context.Background(), snapshotKey).Err(); delErr != nil {
			s.logger.Warnf("redis DEL failed: %v", delErr)
		}
		return nil, e.ErrSnapshotMiss
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			s.logger.Warnf("invalid cached price for product %d: %v", m.ID, err)
			continue
		}
		products = append(products, domain.Product{
			ID:            m.ID,
			SKU:           m.SKU,
			Name:          m.Name,
			Price:         price,
			StockQuantity: m.StockQuantity,
			TaxExempt:     m.TaxExempt,
		})
	}

	return products, nil
}

// Store целиком заменяет снапшот каталога с настроенным TTL.
func (s *SnapshotRepo) Store(ctx context.Context, products []domain.Product) error {
	models := make([]productCacheModel, 0, len(products))
	for _, p := range products {
		models = append(models, productCacheModel{
			ID:            p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Price:         p.Price.String(),
			StockQuantity: p.StockQuantity,
			TaxExempt:     p.TaxExempt,
		})
	}

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, snapshotKey, data, s.cfg.SnapshotTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
