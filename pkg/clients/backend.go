package clients

import (
	"net/http"

	"github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
)

// NewBackendHTTPClient создаёт http.Client для обращений к POS-бэкенду
// с единым таймаутом на запрос. Редиректы не ожидаются и не обрабатываются особо.
func NewBackendHTTPClient(cfg *cfg.BackendCfg) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
	}
}
