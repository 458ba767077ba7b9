package usecase

import "context"

// SaleJournal публикует событие завершённой продажи во внешний журнал.
// Публикация — best-effort: её сбой никогда не влияет на саму продажу.
type SaleJournal interface {
	PublishSale(ctx context.Context, req *SaleEventReq) error
}
