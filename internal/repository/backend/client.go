package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/jitter"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

// Client — общий HTTP-клиент REST-контракта POS-бэкенда. Читающие запросы
// повторяются с экспоненциальным отступлением; пишущие выполняются строго
// один раз, чтобы неоднозначный сбой не породил дубль заказа.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries int
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, cfg *cfg.BackendCfg, logger logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		http:       httpClient,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// getJSON выполняет GET с повторами и декодирует 2xx-ответ в out.
// 404 возвращается как e.ErrProductNotFound без повторов.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	const (
		baseBackoff = 500 * time.Millisecond
		maxBackoff  = 5 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			sleep := jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt-1, jitter.DefaultJitter)
			c.logger.Warnf("backend GET %s failed, retrying in %v (attempt %d): %v", path, sleep, attempt, lastErr)

			select {
			case <-time.After(sleep):
			case <-ctx.Done():
				return e.Wrap("backend", ctx.Err())
			}
		}

		err := c.doJSON(ctx, http.MethodGet, path, nil, "", out)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

// doJSON выполняет один запрос. body == nil — запрос без тела.
// requestID, если непустой, передаётся в заголовке X-Request-Id.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, requestID string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return e.Wrap("backend: marshal request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return e.Wrap("backend: build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return e.Wrap(err.Error(), e.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return e.Wrap(err.Error(), e.ErrMalformedResponse)
	}

	return nil
}

// statusError превращает не-2xx ответ в ошибку с кодом и текстом ответа.
// 404 отображается в e.ErrProductNotFound — единственный код, который
// ядро различает отдельно (промах SKU-поиска).
func statusError(resp *http.Response) error {
	const maxErrBody = 4 << 10

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))

	if resp.StatusCode == http.StatusNotFound {
		return e.Wrap(fmt.Sprintf("status %d", resp.StatusCode), e.ErrProductNotFound)
	}

	return e.Wrap(fmt.Sprintf("status %d: %s", resp.StatusCode, string(text)), e.ErrBackendStatus)
}

// retryable отвечает, имеет ли смысл повторять читающий запрос.
// Повторяются только транспортные сбои; ответ бэкенда, даже ошибочный,
// считается окончательным.
func retryable(err error) bool {
	return errors.Is(err, e.ErrBackendUnavailable)
}
