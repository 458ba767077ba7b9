package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type Config struct {
	Http    *HTTPConfig
	Backend *BackendCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Pos     *PosCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type BackendCfg struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

type RedisCfg struct {
	Enabled     bool
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	SnapshotTTL time.Duration
}

type KafkaCfg struct {
	Enabled     bool
	Topic       string
	Brokers     []string
	NetworkMode string
}

type PosCfg struct {
	TaxRate         decimal.Decimal // единая плоская ставка налога, напр. 0.07
	RefreshInterval time.Duration   // период фонового обновления каталога, 0 — выключено
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	backend, err := loadBackendCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	pos, err := loadPosCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Backend: backend,
		Redis:   redis,
		Kafka:   kafka,
		Pos:     pos,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8090"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadBackendCfg(log logger.Logger) (*BackendCfg, error) {
	const (
		defaultTimeout    = 10 * time.Second
		defaultMaxRetries = 3
	)

	baseURL := getEnv("BACKEND_BASE_URL")
	if baseURL == "" {
		err := fmt.Errorf("BACKEND_BASE_URL is required")
		log.Errorf(err, "missing BACKEND_BASE_URL")
		return nil, err
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout, err := parseDurationEnv("BACKEND_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid BACKEND_TIMEOUT")
		return nil, err
	}

	maxRetries, err := parseIntEnv("BACKEND_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, e.Wrap("BACKEND_MAX_RETRIES", err)
	}

	return &BackendCfg{
		BaseURL:    baseURL,
		Timeout:    timeout,
		MaxRetries: maxRetries,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr        = "localhost:6379"
		defaultDB          = 0
		defaultMaxRetries  = 3
		defaultDialTimeout = 5 * time.Second
		defaultTimeout     = 3 * time.Second
		defaultSnapshotTTL = 12 * time.Hour
	)

	enabled, err := parseBoolEnv("SNAPSHOT_CACHE_ENABLED", false)
	if err != nil {
		log.Errorf(err, "invalid SNAPSHOT_CACHE_ENABLED")
		return nil, err
	}

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	timeout, err := parseDurationEnv("REDIS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_TIMEOUT")
		return nil, err
	}

	snapshotTTL, err := parseDurationEnv("SNAPSHOT_TTL", defaultSnapshotTTL)
	if err != nil {
		log.Errorf(err, "invalid SNAPSHOT_TTL")
		return nil, err
	}

	return &RedisCfg{
		Enabled:     enabled,
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		SnapshotTTL: snapshotTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const defaultNetworkMode = "tcp"

	enabled, err := parseBoolEnv("SALE_JOURNAL_ENABLED", false)
	if err != nil {
		return nil, e.Wrap("SALE_JOURNAL_ENABLED", err)
	}

	cfg := &KafkaCfg{
		Enabled:     enabled,
		NetworkMode: getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}

	if !enabled {
		return cfg, nil
	}

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	cfg.Brokers = strings.Split(brokerStr, ",")

	cfg.Topic = os.Getenv("KAFKA_TOPIC")
	if cfg.Topic == "" {
		return nil, fmt.Errorf("KAFKA_TOPIC environment variable is required")
	}

	return cfg, nil
}

func loadPosCfg(log logger.Logger) (*PosCfg, error) {
	const (
		defaultTaxRate         = "0.07" // 7% sales tax
		defaultRefreshInterval = time.Duration(0)
	)

	taxRate, err := decimal.NewFromString(getEnvOrDefault("POS_TAX_RATE", defaultTaxRate))
	if err != nil {
		log.Errorf(err, "invalid POS_TAX_RATE")
		return nil, err
	}
	if taxRate.IsNegative() {
		err := fmt.Errorf("POS_TAX_RATE must not be negative")
		log.Errorf(err, "invalid POS_TAX_RATE")
		return nil, err
	}

	refreshInterval, err := parseDurationEnv("CATALOG_REFRESH_INTERVAL", defaultRefreshInterval)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_REFRESH_INTERVAL")
		return nil, err
	}

	return &PosCfg{
		TaxRate:         taxRate,
		RefreshInterval: refreshInterval,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}
